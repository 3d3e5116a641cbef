package dto

import "time"

type UserResponse struct {
	ID           uint      `json:"id"`
	Username     string    `json:"username"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phoneNumber"`
	Residency    string    `json:"residency"`
	Role         int       `json:"role"`
	Avatar       string    `json:"avatar"`
	IsVerified   bool      `json:"isVerified"`
	SavedStayIDs []int64   `json:"savedStayIds"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type UpdateUserRequest struct {
	Username    string `json:"username"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Residency   string `json:"residency"`
	Avatar      string `json:"avatar"`
}

type SaveStayRequest struct {
	StayID uint `json:"stayId" binding:"required"`
}
