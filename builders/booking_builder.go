package builders

import (
	"time"

	"travelmore/models"

	"github.com/shopspring/decimal"
)

// BookingBuilder assembles a Booking step by step.
type BookingBuilder struct {
	booking *models.Booking
}

// NewBookingBuilder creates a new BookingBuilder.
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{},
	}
}

// WithUser sets the booking owner.
func (b *BookingBuilder) WithUser(userID uint) *BookingBuilder {
	b.booking.UserID = userID
	return b
}

// WithStay sets the stay the room is booked under.
func (b *BookingBuilder) WithStay(stayID uint) *BookingBuilder {
	b.booking.StayID = stayID
	return b
}

// WithRoom sets the booked accommodation.
func (b *BookingBuilder) WithRoom(accommodationID uint) *BookingBuilder {
	b.booking.AccommodationID = accommodationID
	return b
}

// WithDates sets arrival and departure dates.
func (b *BookingBuilder) WithDates(arrival, departure time.Time) *BookingBuilder {
	b.booking.ArrivalDate = arrival
	b.booking.DepartureDate = departure
	return b
}

// WithGuests sets the guest count.
func (b *BookingBuilder) WithGuests(numberOfGuests int) *BookingBuilder {
	b.booking.NumberOfGuests = numberOfGuests
	return b
}

// WithTotalPrice sets the computed total price.
func (b *BookingBuilder) WithTotalPrice(totalPrice decimal.Decimal) *BookingBuilder {
	b.booking.TotalPrice = totalPrice
	return b
}

// Build returns the assembled booking.
func (b *BookingBuilder) Build() *models.Booking {
	return b.booking
}
