package models

import (
	"time"
)

// ContactInfo is a snapshot of the booking user taken at creation time.
// It never changes afterwards, even if the user profile does.
type ContactInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Booking struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	UserID uint  `json:"userId"`
	User   *User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	// Type selects which of the two field groups below is populated.
	Type string `json:"type"`

	// Accommodation bookings
	AccommodationID *uint          `json:"accommodationId,omitempty"`
	Accommodation   *Accommodation `gorm:"foreignKey:AccommodationID" json:"accommodation,omitempty"`
	CheckIn         *time.Time     `json:"checkIn,omitempty"`
	CheckOut        *time.Time     `json:"checkOut,omitempty"`
	Guests          int            `gorm:"default:1" json:"guests,omitempty"`
	RoomType        string         `json:"roomType,omitempty"`

	// Guide bookings
	GuideID   *uint      `json:"guideId,omitempty"`
	Guide     *User      `gorm:"foreignKey:GuideID" json:"guide,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	Duration  string     `json:"duration,omitempty"`
	TourType  string     `json:"tourType,omitempty"`

	TotalAmount     float64     `json:"totalAmount"`
	Status          string      `gorm:"default:pending" json:"status"`
	PaymentStatus   string      `gorm:"default:pending" json:"paymentStatus"`
	SpecialRequests string      `json:"specialRequests,omitempty"`
	ContactInfo     ContactInfo `gorm:"embedded;embeddedPrefix:contact_" json:"contactInfo"`
}
