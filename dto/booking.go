package dto

import "time"

// CreateBookingInput carries both booking variants; Type selects which
// field group applies.
type CreateBookingInput struct {
	Type string `json:"type" binding:"required"`

	// Accommodation bookings
	Accommodation *uint      `json:"accommodation"`
	CheckIn       *time.Time `json:"checkIn"`
	CheckOut      *time.Time `json:"checkOut"`
	Guests        int        `json:"guests"`
	RoomType      string     `json:"roomType"`

	// Guide bookings
	Guide     *uint      `json:"guide"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	Duration  string     `json:"duration"`
	TourType  string     `json:"tourType"`

	SpecialRequests string `json:"specialRequests"`
}

// UpdateBookingInput covers the mutable booking fields. User, type and
// totalAmount are never updated.
type UpdateBookingInput struct {
	CheckIn         *time.Time `json:"checkIn"`
	CheckOut        *time.Time `json:"checkOut"`
	Guests          *int       `json:"guests"`
	RoomType        *string    `json:"roomType"`
	StartDate       *time.Time `json:"startDate"`
	EndDate         *time.Time `json:"endDate"`
	TourType        *string    `json:"tourType"`
	SpecialRequests *string    `json:"specialRequests"`
	PaymentStatus   *string    `json:"paymentStatus"`
}

type BookingStatusInput struct {
	Status string `json:"status" binding:"required"`
}
