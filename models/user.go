package models

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name      string    `json:"name"`
	Email     string    `gorm:"uniqueIndex" json:"email"` // stored lowercased
	Password  string    `json:"-"`
	Role      string    `gorm:"default:tourist" json:"role"`
	Phone     string    `json:"phone"`
	Avatar    string    `json:"avatar"`

	// Tourist fields
	Nationality string         `json:"nationality,omitempty"`
	Preferences pq.StringArray `gorm:"type:text[]" json:"preferences,omitempty"`

	// Guide fields. Rates are free text carried through from the catalog
	// source, e.g. "USD 15" or "$20-30"; see services.FirstInt.
	Bio          string         `json:"bio,omitempty"`
	Location     string         `json:"location,omitempty"`
	Languages    pq.StringArray `gorm:"type:text[]" json:"languages,omitempty"`
	Specialties  pq.StringArray `gorm:"type:text[]" json:"specialties,omitempty"`
	HourlyRate   string         `json:"hourlyRate,omitempty"`
	DailyRate    string         `json:"dailyRate,omitempty"`
	Experience   string         `json:"experience,omitempty"`
	Verified     bool           `gorm:"default:false" json:"verified"`
	Rating       float64        `gorm:"default:0" json:"rating"`
	Reviews      int            `gorm:"default:0" json:"reviews"`
	Highlights   pq.StringArray `gorm:"type:text[]" json:"highlights,omitempty"`
	Availability string         `gorm:"default:Available" json:"availability,omitempty"`

	IsActive bool `gorm:"default:true" json:"isActive"`
}

// PublicUser is the projection returned by login and registration.
type PublicUser struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
		Avatar: u.Avatar,
	}
}
