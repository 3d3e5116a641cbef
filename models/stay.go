package models

import (
	"time"
)

type Stay struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	DestinationID  uint            `json:"destinationId"`
	Name           string          `json:"name"`    // Hotel name
	Address        string          `json:"address"` // Hotel address
	Description    string          `json:"description"`
	URLMap         string          `json:"urlMap"` // Link to the hotel on the map
	Image          string          `json:"image"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	AvgRating      int             `json:"avgRating"` // Cached average of stay star ratings
	Destination    Destination     `json:"destination" gorm:"foreignKey:DestinationID"`
	Amenities      []Amenity       `json:"amenities" gorm:"many2many:stay_amenities;"`
	Rooms          []Accommodation `json:"rooms" gorm:"foreignKey:StayID"`
	Bookings       []Booking       `json:"bookings" gorm:"foreignKey:StayID;constraint:OnDelete:CASCADE"`
	StayFrames     []StayFrame     `json:"stayFrames" gorm:"foreignKey:StayID"`
	ReviewStays    []ReviewStay    `json:"reviewStays" gorm:"foreignKey:StayID"`
	RatingStays    []RatingStay    `json:"-" gorm:"foreignKey:StayID"`
}
