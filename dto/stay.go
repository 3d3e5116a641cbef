package dto

import "time"

type CreateStayRequest struct {
	Name          string `json:"name" binding:"required"`
	DestinationID uint   `json:"destinationId" binding:"required"`
	Address       string `json:"address"`
	Description   string `json:"description"`
	URLMap        string `json:"urlMap"`
	AmenityIDs    []uint `json:"amenityIds"`
}

type UpdateStayRequest struct {
	ID          uint   `json:"id" binding:"required"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`
	URLMap      string `json:"urlMap"`
	AmenityIDs  []uint `json:"amenityIds"`
}

type StayListResponse struct {
	ID                 uint   `json:"id"`
	Name               string `json:"name"`
	NameDestination    string `json:"nameDestination"`
	CountryDestination string `json:"countryDestination"`
	Image              string `json:"image"`
	AvgRating          int    `json:"avgRating"`
	ReviewsCount       int    `json:"reviewsCount"`
}

type StayDetailResponse struct {
	ID          uint                        `json:"id"`
	Name        string                      `json:"name"`
	Country     string                      `json:"country"`
	Address     string                      `json:"address"`
	Image       string                      `json:"image"`
	StayFrames  []FrameResponse             `json:"stayFrames"`
	Description string                      `json:"description"`
	Rooms       []AccommodationListResponse `json:"rooms"`
	URLMap      string                      `json:"urlMap"`
	Amenities   []string                    `json:"amenities"`
	AvgRating   int                         `json:"avgRating"`
	ReviewStays []ReviewResponse            `json:"reviewStays"`
	CreatedAt   time.Time                   `json:"createdAt"`
}

type FrameResponse struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	Image string `json:"image"`
}

type CreateFrameRequest struct {
	Title   string `json:"title" binding:"required"`
	OwnerID uint   `json:"ownerId" binding:"required"` // Stay or room id the frame hangs on
	Image   string `json:"image"`
}
