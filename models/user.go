package models

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
	Username      string        `gorm:"default:New User" json:"username"`
	FirstName     string        `json:"firstName"`
	LastName      string        `json:"lastName"`
	Email         string        `gorm:"unique" json:"email"`
	Password      string        `json:"password"`
	IsVerified    bool          `gorm:"default:false" json:"isVerified"`
	Code          string        `json:"code"`
	CodeCreatedAt time.Time     `gorm:"autoCreateTime" json:"codeCreatedAt"`
	PhoneNumber   string        `gorm:"type:varchar(15)" json:"phoneNumber"`
	Residency     string        `json:"residency"`
	Avatar        string        `json:"avatar"`
	Role          int           `gorm:"default:0" json:"role"` // 0 tenant, 1 landlord, 2 admin
	SavedStayIDs  pq.Int64Array `json:"savedStayIds" gorm:"type:integer[]"` // Stays the user bookmarked
	Bookings      []Booking     `json:"bookings,omitempty" gorm:"foreignKey:UserID"`
}

// FullName joins first and last name the way booking confirmations show it.
func (u *User) FullName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Username
	}
	return u.FirstName + " " + u.LastName
}
