package models

import "time"

// User is keyed by username; listings, bookings and messages all reference it.
type User struct {
	Username  string    `gorm:"primaryKey;size:30" json:"username"`
	FirstName string    `gorm:"size:25;not null" json:"first_name"`
	LastName  string    `gorm:"size:25;not null" json:"last_name"`
	Email     string    `gorm:"uniqueIndex;size:50;not null" json:"email"`
	Password  string    `gorm:"size:100;not null" json:"-"` // bcrypt hash, never serialized
	IsHost    bool      `gorm:"not null;default:false" json:"is_host"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Listings []Listing `gorm:"foreignKey:Username;references:Username" json:"-"`
	Bookings []Booking `gorm:"foreignKey:Username;references:Username" json:"-"`
	Messages []Message `gorm:"foreignKey:FromUsername;references:Username" json:"-"`
}
