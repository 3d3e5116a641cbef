package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Room type / room count / bed class enums carried over from the catalog.
const (
	TypeRoomStandard = "STANDARD"
	TypeRoomSuite    = "SUITE"
	TypeRoomDeluxe   = "DELUXE"

	NumberRoomsOne   = "ONE ROOM"
	NumberRoomsTwo   = "TWO ROOMS"
	NumberRoomsThree = "THREE ROOMS"

	NumberBedsSingle = "SINGLE-BED"
	NumberBedsDouble = "DOUBLE-BED"
	NumberBedsTwin   = "TWIN-BEDS"
)

type Accommodation struct {
	ID          uint                 `json:"id" gorm:"primaryKey"`
	StayID      uint                 `json:"stayId"`
	Name        string               `json:"name" gorm:"unique"` // Room name, unique across the catalog
	TypeRoom    string               `json:"typeRoom" gorm:"default:STANDARD"`
	NumberRooms string               `json:"numberRooms" gorm:"default:ONE ROOM"`
	NumberBeds  string               `json:"numberBeds" gorm:"default:SINGLE-BED"`
	NightPrice  decimal.NullDecimal  `json:"nightPrice" gorm:"type:decimal(8,2)"` // Nullable until the landlord sets a rate
	IsBooked    bool                 `json:"isBooked" gorm:"default:false"`       // Derived from the booking set, not authoritative
	Image       string               `json:"image"`
	CreatedAt   time.Time            `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time            `gorm:"autoUpdateTime" json:"updatedAt"`
	Stay        Stay                 `json:"stay" gorm:"foreignKey:StayID"`
	Amenities   []Amenity            `json:"amenities" gorm:"many2many:accommodation_amenities;"`
	Bookings    []Booking            `json:"bookings" gorm:"foreignKey:AccommodationID;constraint:OnDelete:CASCADE"`
	RoomFrames  []AccommodationFrame `json:"roomFrames" gorm:"foreignKey:AccommodationID"`
}

func (a *Accommodation) ValidateTypeRoom() error {
	switch a.TypeRoom {
	case TypeRoomStandard, TypeRoomSuite, TypeRoomDeluxe:
		return nil
	}
	return fmt.Errorf("invalid typeRoom: %q", a.TypeRoom)
}

func (a *Accommodation) ValidateNumberBeds() error {
	switch a.NumberBeds {
	case NumberBedsSingle, NumberBedsDouble, NumberBedsTwin:
		return nil
	}
	return fmt.Errorf("invalid numberBeds: %q", a.NumberBeds)
}
