package models

import "time"

type Message struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FromUsername string    `gorm:"size:30;index;not null" json:"from_username"`
	PropertyID   uint      `gorm:"column:property_id;index;not null" json:"property_id"`
	Body         string    `gorm:"type:text;not null" json:"body"`
	SentAtDate   time.Time `gorm:"column:sent_at_date;not null" json:"sent_at_date"`

	Sender   User    `gorm:"foreignKey:FromUsername;references:Username" json:"-"`
	Property Listing `gorm:"foreignKey:PropertyID;references:ID" json:"-"`
}
