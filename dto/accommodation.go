package dto

import "github.com/shopspring/decimal"

type CreateAccommodationRequest struct {
	Name        string  `json:"name" binding:"required"`
	StayID      uint    `json:"stayId" binding:"required"`
	TypeRoom    string  `json:"typeRoom"`
	NumberRooms string  `json:"numberRooms"`
	NumberBeds  string  `json:"numberBeds"`
	NightPrice  *string `json:"nightPrice"` // Decimal string, e.g. "100.00"
	AmenityIDs  []uint  `json:"amenityIds"`
}

type UpdateAccommodationRequest struct {
	ID          uint    `json:"id" binding:"required"`
	Name        string  `json:"name"`
	TypeRoom    string  `json:"typeRoom"`
	NumberRooms string  `json:"numberRooms"`
	NumberBeds  string  `json:"numberBeds"`
	NightPrice  *string `json:"nightPrice"`
	AmenityIDs  []uint  `json:"amenityIds"`
}

type AccommodationListResponse struct {
	ID          uint                `json:"id"`
	Name        string              `json:"name"`
	Stay        string              `json:"stay"`
	TypeRoom    string              `json:"typeRoom"`
	NumberRooms string              `json:"numberRooms"`
	NumberBeds  string              `json:"numberBeds"`
	IsBooked    bool                `json:"isBooked"`
	NightPrice  decimal.NullDecimal `json:"nightPrice"`
	Amenities   []string            `json:"amenities"`
	Image       string              `json:"image"`
}

type AccommodationDetailResponse struct {
	ID          uint                `json:"id"`
	Name        string              `json:"name"`
	Stay        string              `json:"stay"`
	TypeRoom    string              `json:"typeRoom"`
	NumberRooms string              `json:"numberRooms"`
	NumberBeds  string              `json:"numberBeds"`
	IsBooked    bool                `json:"isBooked"`
	NightPrice  decimal.NullDecimal `json:"nightPrice"`
	Amenities   []AmenityResponse   `json:"amenities"`
	Image       string              `json:"image"`
	RoomFrames  []FrameResponse     `json:"roomFrames"`
}

type AmenityResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type CreateAmenityRequest struct {
	Name string `json:"name" binding:"required"`
}
