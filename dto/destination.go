package dto

import "time"

type CreateDestinationRequest struct {
	Name        string `json:"name" binding:"required"`
	Country     string `json:"country" binding:"required"`
	Description string `json:"description"`
	URLMap      string `json:"urlMap"`
}

type UpdateDestinationRequest struct {
	ID          uint   `json:"id" binding:"required"`
	Name        string `json:"name"`
	Country     string `json:"country"`
	Description string `json:"description"`
	URLMap      string `json:"urlMap"`
}

type DestinationResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Country     string `json:"country"`
	Description string `json:"description"`
	URLMap      string `json:"urlMap"`
	Image       string `json:"image"`
}

// DestinationListResponse is the list row: avg rating and reviews count
// come annotated, not embedded.
type DestinationListResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Country      string `json:"country"`
	Image        string `json:"image"`
	AvgRating    int    `json:"avgRating"`
	ReviewsCount int    `json:"reviewsCount"`
}

type DestinationDetailResponse struct {
	ID                 uint               `json:"id"`
	Name               string             `json:"name"`
	Country            string             `json:"country"`
	Image              string             `json:"image"`
	Description        string             `json:"description"`
	URLMap             string             `json:"urlMap"`
	AvgRating          int                `json:"avgRating"`
	Stays              []StayListResponse `json:"stays"`
	ReviewDestinations []ReviewResponse   `json:"reviewDestinations"`
	CreatedAt          time.Time          `json:"createdAt"`
}
