package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Booking is created once per reservation request and never rescheduled.
// TotalPrice is computed by the booking engine before the row is written.
type Booking struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	UserID          uint            `json:"userId"`
	StayID          uint            `json:"stayId"`
	AccommodationID uint            `json:"accommodationId"`
	ArrivalDate     time.Time       `json:"arrivalDate" gorm:"type:date"`
	DepartureDate   time.Time       `json:"departureDate" gorm:"type:date"`
	NumberOfGuests  int             `json:"numberOfGuests"`
	TotalPrice      decimal.Decimal `json:"totalPrice" gorm:"type:decimal(10,2)"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	User            User            `json:"user" gorm:"foreignKey:UserID"`
	Stay            Stay            `json:"stay" gorm:"foreignKey:StayID"`
	Accommodation   Accommodation   `json:"rooms" gorm:"foreignKey:AccommodationID"`
}
