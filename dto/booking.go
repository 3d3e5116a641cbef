package dto

import "time"

type CreateBookingRequest struct {
	StayID          uint   `json:"stayId" binding:"required"`
	AccommodationID uint   `json:"roomId" binding:"required"`
	ArrivalDate     string `json:"arrivalDate" binding:"required"`   // "2006-01-02"
	DepartureDate   string `json:"departureDate" binding:"required"` // "2006-01-02"
	NumberOfGuests  int    `json:"numberOfGuests" binding:"required"`
}

type BookingRoomResponse struct {
	ID         uint   `json:"id"`
	StayID     uint   `json:"stayId"`
	Name       string `json:"name"`
	NightPrice string `json:"nightPrice"`
}

type BookingResponse struct {
	ID             uint                `json:"id"`
	FirstName      string              `json:"firstName"`
	LastName       string              `json:"lastName"`
	FullName       string              `json:"fullName"`
	ArrivalDate    string              `json:"arrivalDate"`
	DepartureDate  string              `json:"departureDate"`
	NumberOfGuests int                 `json:"numberOfGuests"`
	Stay           StayListResponse    `json:"stay"`
	Room           BookingRoomResponse `json:"rooms"`
	TotalPrice     string              `json:"totalPrice"`
	CreatedAt      time.Time           `json:"createdAt"`
}

type AvailabilityResponse struct {
	RoomID   uint   `json:"roomId"`
	Today    string `json:"today"`
	IsBooked bool   `json:"isBooked"`
}
