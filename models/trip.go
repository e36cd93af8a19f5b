package models

import (
	"time"
)

type Destination struct {
	Name  string  `json:"name"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Order int     `json:"order"`
	Days  int     `json:"days"`
}

type Activity struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
	Location string `json:"location"`
	Type     string `json:"type"` // attraction, accommodation, restaurant, transport, other
	Notes    string `json:"notes"`
}

type ItineraryDay struct {
	Day        int        `json:"day"`
	Date       *time.Time `json:"date,omitempty"`
	Activities []Activity `json:"activities"`
}

type TripAccommodation struct {
	AccommodationID uint       `json:"accommodationId"`
	CheckIn         *time.Time `json:"checkIn,omitempty"`
	CheckOut        *time.Time `json:"checkOut,omitempty"`
	Notes           string     `json:"notes"`
}

type TripGuide struct {
	GuideID  uint       `json:"guideId"`
	Date     *time.Time `json:"date,omitempty"`
	Duration string     `json:"duration"`
	Notes    string     `json:"notes"`
}

type TripAttraction struct {
	AttractionID uint       `json:"attractionId"`
	Date         *time.Time `json:"date,omitempty"`
	Order        int        `json:"order"`
	Notes        string     `json:"notes"`
}

type Budget struct {
	Total         float64 `json:"total"`
	Accommodation float64 `json:"accommodation"`
	Transport     float64 `json:"transport"`
	Food          float64 `json:"food"`
	Activities    float64 `json:"activities"`
}

type Trip struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	UserID uint  `json:"userId"`
	User   *User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`

	Destinations   []Destination       `gorm:"serializer:json" json:"destinations"`
	Itinerary      []ItineraryDay      `gorm:"serializer:json" json:"itinerary"`
	Accommodations []TripAccommodation `gorm:"serializer:json" json:"accommodations"`
	Guides         []TripGuide         `gorm:"serializer:json" json:"guides"`
	Attractions    []TripAttraction    `gorm:"serializer:json" json:"attractions"`
	Budget         Budget              `gorm:"serializer:json" json:"budget"`

	IsPublic bool `gorm:"default:false" json:"isPublic"`
	IsShared bool `gorm:"default:false" json:"isShared"`
}
