package constants

// User roles
const (
	RoleTourist = "tourist"
	RoleGuide   = "guide"
	RoleAdmin   = "admin"
)

// Booking types
const (
	BookingTypeAccommodation = "accommodation"
	BookingTypeGuide         = "guide"
)

// Booking status
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Payment status
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

// Guide booking duration
const (
	DurationHourly = "hourly"
	DurationDaily  = "daily"
)

// Guide availability
const (
	AvailabilityAvailable   = "Available"
	AvailabilityBusy        = "Busy"
	AvailabilityUnavailable = "Unavailable"
)

// Contact message status
const (
	ContactStatusNew      = "new"
	ContactStatusRead     = "read"
	ContactStatusReplied  = "replied"
	ContactStatusArchived = "archived"
)

// AccommodationTypes is the closed set accepted on create/update.
var AccommodationTypes = []string{
	"Resort", "Hotel", "Boutique Hotel", "Beach Cabanas", "Mountain Lodge",
	"Heritage Hotel", "Cottage", "Safari Lodge", "City Hotel",
}

// Regions covered by the catalog.
var Regions = []string{
	"Central Highlands", "South Coast", "West Coast", "North", "East",
}

// AttractionCategories accepted on create/update.
var AttractionCategories = []string{
	"heritage", "beach", "nature", "adventure", "cultural", "religious", "wildlife",
}

// ContactStatuses accepted on status update.
var ContactStatuses = []string{
	ContactStatusNew, ContactStatusRead, ContactStatusReplied, ContactStatusArchived,
}
