package models

import "time"

// File records every stored upload so images remain traceable after the
// listing that referenced them changes or disappears.
type File struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	OriginalFilename string    `gorm:"size:100" json:"original_filename"`
	Filename         string    `gorm:"size:100" json:"filename"`
	Bucket           string    `gorm:"size:100" json:"bucket"`
	Region           string    `gorm:"size:100" json:"region"`
	CreatedAt        time.Time `json:"-"`
}
