package models

import "time"

type ReviewStay struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId"`
	StayID    uint      `json:"stayId" gorm:"index"`
	Text      string    `json:"text"` // Review body
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	User      User      `json:"user" gorm:"foreignKey:UserID"`
}

type ReviewDestination struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        uint      `json:"userId"`
	DestinationID uint      `json:"destinationId" gorm:"index"`
	Text          string    `json:"text"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	User          User      `json:"user" gorm:"foreignKey:UserID"`
}
