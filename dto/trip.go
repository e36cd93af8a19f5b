package dto

import (
	"time"

	"taprobane/models"
)

type CreateTripInput struct {
	Title          string                     `json:"title" binding:"required"`
	Description    string                     `json:"description"`
	StartDate      time.Time                  `json:"startDate" binding:"required"`
	EndDate        time.Time                  `json:"endDate" binding:"required"`
	Destinations   []models.Destination       `json:"destinations"`
	Itinerary      []models.ItineraryDay      `json:"itinerary"`
	Accommodations []models.TripAccommodation `json:"accommodations"`
	Guides         []models.TripGuide         `json:"guides"`
	Attractions    []models.TripAttraction    `json:"attractions"`
	Budget         models.Budget              `json:"budget"`
	IsPublic       bool                       `json:"isPublic"`
	IsShared       bool                       `json:"isShared"`
}

type UpdateTripInput struct {
	Title          *string                     `json:"title"`
	Description    *string                     `json:"description"`
	StartDate      *time.Time                  `json:"startDate"`
	EndDate        *time.Time                  `json:"endDate"`
	Destinations   *[]models.Destination       `json:"destinations"`
	Itinerary      *[]models.ItineraryDay      `json:"itinerary"`
	Accommodations *[]models.TripAccommodation `json:"accommodations"`
	Guides         *[]models.TripGuide         `json:"guides"`
	Attractions    *[]models.TripAttraction    `json:"attractions"`
	Budget         *models.Budget              `json:"budget"`
	IsPublic       *bool                       `json:"isPublic"`
	IsShared       *bool                       `json:"isShared"`
}
