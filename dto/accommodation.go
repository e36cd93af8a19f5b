package dto

type CreateAccommodationInput struct {
	Name          string   `json:"name" binding:"required"`
	Type          string   `json:"type" binding:"required"`
	Description   string   `json:"description" binding:"required"`
	Location      string   `json:"location" binding:"required"`
	Lat           float64  `json:"lat"`
	Lng           float64  `json:"lng"`
	Images        []string `json:"images"`
	PricePerNight string   `json:"pricePerNight" binding:"required"`
	Amenities     []string `json:"amenities"`
	RoomTypes     []string `json:"roomTypes"`
	Checkin       string   `json:"checkin"`
	Checkout      string   `json:"checkout"`
	BestFor       string   `json:"bestFor"`
	Region        string   `json:"region"`
}

type UpdateAccommodationInput struct {
	Name          *string   `json:"name"`
	Type          *string   `json:"type"`
	Description   *string   `json:"description"`
	Location      *string   `json:"location"`
	Lat           *float64  `json:"lat"`
	Lng           *float64  `json:"lng"`
	Rating        *float64  `json:"rating"`
	Reviews       *int      `json:"reviews"`
	Images        *[]string `json:"images"`
	PricePerNight *string   `json:"pricePerNight"`
	Amenities     *[]string `json:"amenities"`
	RoomTypes     *[]string `json:"roomTypes"`
	Checkin       *string   `json:"checkin"`
	Checkout      *string   `json:"checkout"`
	BestFor       *string   `json:"bestFor"`
	Region        *string   `json:"region"`
}
