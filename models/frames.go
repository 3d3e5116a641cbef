package models

import "time"

// StayFrame is one gallery image attached to a stay.
type StayFrame struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	StayID    uint      `json:"stayId" gorm:"index"`
	Title     string    `json:"title"`
	Image     string    `json:"image"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// AccommodationFrame is one gallery image attached to a room.
type AccommodationFrame struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	AccommodationID uint      `json:"accommodationId" gorm:"index"`
	Title           string    `json:"title"`
	Image           string    `json:"image"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
