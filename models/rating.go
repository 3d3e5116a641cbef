package models

import "time"

// RatingStar is the fixed 1..5 star scale rows are rated against.
type RatingStar struct {
	ID    uint `json:"id" gorm:"primaryKey"`
	Value int  `json:"value" gorm:"unique"`
}

// RatingStay holds one user's star rating of a stay. A user rates a stay
// at most once; re-rating replaces the star.
type RatingStay struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	UserID    uint       `json:"userId" gorm:"uniqueIndex:idx_rating_stay_user"`
	StayID    uint       `json:"stayId" gorm:"uniqueIndex:idx_rating_stay_user"`
	StarID    uint       `json:"starId"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	User      User       `json:"user" gorm:"foreignKey:UserID"`
	Star      RatingStar `json:"star" gorm:"foreignKey:StarID"`
}

// RatingDestination holds one user's star rating of a destination.
type RatingDestination struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	UserID        uint       `json:"userId" gorm:"uniqueIndex:idx_rating_destination_user"`
	DestinationID uint       `json:"destinationId" gorm:"uniqueIndex:idx_rating_destination_user"`
	StarID        uint       `json:"starId"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	User          User       `json:"user" gorm:"foreignKey:UserID"`
	Star          RatingStar `json:"star" gorm:"foreignKey:StarID"`
}
