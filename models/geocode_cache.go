package models

import (
	"time"

	"gorm.io/datatypes"
)

// GeocodeCache memoizes resolved addresses so repeated listing creates for the
// same street+city never hit the geocoder twice. Raw keeps the provider
// response for debugging bad resolutions.
type GeocodeCache struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Address   string         `gorm:"uniqueIndex;size:120;not null" json:"address"`
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	Raw       datatypes.JSON `json:"raw,omitempty"`
	CreatedAt time.Time      `json:"-"`
}
