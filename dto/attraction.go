package dto

type CreateAttractionInput struct {
	Name            string   `json:"name" binding:"required"`
	Description     string   `json:"description" binding:"required"`
	Category        string   `json:"category" binding:"required"`
	Lat             float64  `json:"lat"`
	Lng             float64  `json:"lng"`
	EntranceFee     string   `json:"entranceFee"`
	Duration        string   `json:"duration"`
	Images          []string `json:"images"`
	BestTimeToVisit string   `json:"bestTimeToVisit"`
	OpeningHours    string   `json:"openingHours"`
}

type UpdateAttractionInput struct {
	Name            *string   `json:"name"`
	Description     *string   `json:"description"`
	Category        *string   `json:"category"`
	Lat             *float64  `json:"lat"`
	Lng             *float64  `json:"lng"`
	Rating          *float64  `json:"rating"`
	Reviews         *int      `json:"reviews"`
	EntranceFee     *string   `json:"entranceFee"`
	Duration        *string   `json:"duration"`
	Images          *[]string `json:"images"`
	BestTimeToVisit *string   `json:"bestTimeToVisit"`
	OpeningHours    *string   `json:"openingHours"`
}
