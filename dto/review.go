package dto

import "time"

type CreateReviewStayRequest struct {
	StayID uint   `json:"stayId" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

type CreateReviewDestinationRequest struct {
	DestinationID uint   `json:"destinationId" binding:"required"`
	Text          string `json:"text" binding:"required"`
}

type ReviewResponse struct {
	ID        uint      `json:"id"`
	Text      string    `json:"text"`
	User      UserInfo  `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type RateStayRequest struct {
	StayID uint `json:"stayId" binding:"required"`
	Star   int  `json:"star" binding:"required"`
}

type RateDestinationRequest struct {
	DestinationID uint `json:"destinationId" binding:"required"`
	Star          int  `json:"star" binding:"required"`
}

type RatingResponse struct {
	ID   uint     `json:"id"`
	Star int      `json:"star"`
	User UserInfo `json:"user"`
}
