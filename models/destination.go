package models

import (
	"time"
)

type Destination struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name"`    // Destination name
	Country     string    `json:"country"` // Country the destination belongs to
	Description string    `json:"description"`
	URLMap      string    `json:"urlMap"` // Link to the destination on the map
	Image       string    `json:"image"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	AvgRating   int       `json:"avgRating"` // Cached average of destination star ratings
	Stays       []Stay    `json:"stays" gorm:"foreignKey:DestinationID"`
}
