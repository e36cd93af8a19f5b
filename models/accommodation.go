package models

import (
	"time"

	"github.com/lib/pq"
)

type Accommodation struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Rating      float64   `gorm:"default:0" json:"rating"`
	Reviews     int       `gorm:"default:0" json:"reviews"`

	Images pq.StringArray `gorm:"type:text[]" json:"images"`

	// Free text carried from the catalog source, e.g. "$120-180".
	PricePerNight string `json:"pricePerNight"`

	Amenities    pq.StringArray `gorm:"type:text[]" json:"amenities"`
	RoomTypes    pq.StringArray `gorm:"type:text[]" json:"roomTypes"`
	CheckinTime  string         `gorm:"default:14:00" json:"checkin"`
	CheckoutTime string         `gorm:"default:11:00" json:"checkout"`
	BestFor      string         `json:"bestFor,omitempty"`
	Region       string         `json:"region"`

	IsActive bool `gorm:"default:true" json:"isActive"`

	ProviderID *uint `json:"providerId,omitempty"`
	Provider   *User `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
}
