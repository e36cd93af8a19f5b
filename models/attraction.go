package models

import (
	"time"

	"github.com/lib/pq"
)

type Attraction struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Rating      float64   `gorm:"default:0" json:"rating"`
	Reviews     int       `gorm:"default:0" json:"reviews"`

	// Free text, e.g. "LKR 500 / Free for children".
	EntranceFee string `gorm:"default:Free" json:"entranceFee"`
	Duration    string `json:"duration,omitempty"`

	Images          pq.StringArray `gorm:"type:text[]" json:"images"`
	BestTimeToVisit string         `json:"bestTimeToVisit,omitempty"`
	OpeningHours    string         `json:"openingHours,omitempty"`

	IsActive bool `gorm:"default:true" json:"isActive"`
}
