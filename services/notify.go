package services

import (
	"encoding/json"

	"travelmore/models"

	"github.com/olahol/melody"
)

// BookingNotice is the websocket payload broadcast when a booking lands.
type BookingNotice struct {
	BookingID     uint   `json:"bookingId"`
	StayID        uint   `json:"stayId"`
	RoomID        uint   `json:"roomId"`
	ArrivalDate   string `json:"arrivalDate"`
	DepartureDate string `json:"departureDate"`
	TotalPrice    string `json:"totalPrice"`
}

// BroadcastBooking pushes a booking confirmation to all websocket sessions.
// Failures are the caller's to log; a missed notice never fails a booking.
func BroadcastBooking(m *melody.Melody, booking *models.Booking) error {
	if m == nil {
		return nil
	}

	notice := BookingNotice{
		BookingID:     booking.ID,
		StayID:        booking.StayID,
		RoomID:        booking.AccommodationID,
		ArrivalDate:   booking.ArrivalDate.Format("2006-01-02"),
		DepartureDate: booking.DepartureDate.Format("2006-01-02"),
		TotalPrice:    booking.TotalPrice.StringFixed(2),
	}

	payload, err := json.Marshal(notice)
	if err != nil {
		return err
	}
	return m.Broadcast(payload)
}
