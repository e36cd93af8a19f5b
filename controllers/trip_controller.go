package controllers

import (
	"taprobane/config"
	"taprobane/constants"
	"taprobane/dto"
	"taprobane/middleware"
	"taprobane/models"
	"taprobane/response"

	"github.com/gin-gonic/gin"
)

func CreateTrip(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var input dto.CreateTripInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	trip := models.Trip{
		UserID:         user.ID,
		Title:          input.Title,
		Description:    input.Description,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		Destinations:   input.Destinations,
		Itinerary:      input.Itinerary,
		Accommodations: input.Accommodations,
		Guides:         input.Guides,
		Attractions:    input.Attractions,
		Budget:         input.Budget,
		IsPublic:       input.IsPublic,
		IsShared:       input.IsShared,
	}

	if err := config.DB.Create(&trip).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, trip)
}

func GetTrips(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var trips []models.Trip
	err := config.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&trips).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessCount(c, trips, len(trips))
}

func GetPublicTrips(c *gin.Context) {
	var trips []models.Trip
	err := config.DB.Where("is_public = ?", true).
		Preload("User").
		Order("created_at DESC").
		Limit(20).
		Find(&trips).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessCount(c, trips, len(trips))
}

func GetTrip(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var trip models.Trip
	err := config.DB.Preload("User").First(&trip, c.Param("id")).Error
	if err != nil {
		response.NotFound(c, "Trip not found")
		return
	}

	if trip.UserID != user.ID && !trip.IsPublic && user.Role != constants.RoleAdmin {
		response.Forbidden(c, "Not authorized to view this trip")
		return
	}

	response.Success(c, trip)
}

func UpdateTrip(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var trip models.Trip
	if err := config.DB.First(&trip, c.Param("id")).Error; err != nil {
		response.NotFound(c, "Trip not found")
		return
	}

	if trip.UserID != user.ID && user.Role != constants.RoleAdmin {
		response.Forbidden(c, "Not authorized to update this trip")
		return
	}

	var input dto.UpdateTripInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if input.Title != nil {
		trip.Title = *input.Title
	}
	if input.Description != nil {
		trip.Description = *input.Description
	}
	if input.StartDate != nil {
		trip.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		trip.EndDate = *input.EndDate
	}
	if input.Destinations != nil {
		trip.Destinations = *input.Destinations
	}
	if input.Itinerary != nil {
		trip.Itinerary = *input.Itinerary
	}
	if input.Accommodations != nil {
		trip.Accommodations = *input.Accommodations
	}
	if input.Guides != nil {
		trip.Guides = *input.Guides
	}
	if input.Attractions != nil {
		trip.Attractions = *input.Attractions
	}
	if input.Budget != nil {
		trip.Budget = *input.Budget
	}
	if input.IsPublic != nil {
		trip.IsPublic = *input.IsPublic
	}
	if input.IsShared != nil {
		trip.IsShared = *input.IsShared
	}

	if err := config.DB.Save(&trip).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, trip)
}

// DeleteTrip removes the row. Trips are the one entity that is hard-deleted.
func DeleteTrip(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var trip models.Trip
	if err := config.DB.First(&trip, c.Param("id")).Error; err != nil {
		response.NotFound(c, "Trip not found")
		return
	}

	if trip.UserID != user.ID && user.Role != constants.RoleAdmin {
		response.Forbidden(c, "Not authorized to delete this trip")
		return
	}

	if err := config.DB.Delete(&trip).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessMessage(c, "Trip deleted successfully", nil)
}
