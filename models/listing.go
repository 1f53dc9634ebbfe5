package models

import "time"

// DefaultImageURL is applied when a listing is created without an image.
const DefaultImageURL = "https://www.keywestnavalhousing.com/media/com_posthousing/images/nophoto.png"

type Listing struct {
	ID            uint     `gorm:"primaryKey" json:"id"`
	Title         string   `gorm:"size:40;not null" json:"title"`
	Details       string   `gorm:"type:text;not null" json:"details"`
	Street        string   `gorm:"size:50;not null" json:"street"`
	City          string   `gorm:"size:30;not null" json:"city"`
	State         string   `gorm:"size:2;not null" json:"state"`
	Zip           int      `gorm:"not null" json:"zip"`
	Country       string   `gorm:"size:3;not null" json:"country"`
	PricePerNight int      `gorm:"not null" json:"price_per_night"`
	ImageURL      string   `gorm:"size:255;not null" json:"image_url"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`

	// The host. Bookings and messages reference the listing but never own it.
	Username string `gorm:"size:30;index;not null" json:"username"`

	Host User `gorm:"foreignKey:Username;references:Username" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
