package models

import "time"

type Booking struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	Username             string    `gorm:"size:30;index;not null" json:"username"`
	PropertyID           uint      `gorm:"column:property_id;index;not null" json:"property_id"`
	CheckInDate          time.Time `gorm:"column:check_in_date;not null" json:"check_in_date"`
	CheckOutDate         time.Time `gorm:"column:check_out_date;not null" json:"check_out_date"`
	BookingPricePerNight int       `gorm:"not null" json:"booking_price_per_night"`

	Guest    User    `gorm:"foreignKey:Username;references:Username" json:"-"`
	Property Listing `gorm:"foreignKey:PropertyID;references:ID" json:"-"`

	CreatedAt time.Time `json:"-"`
}
