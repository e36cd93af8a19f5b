package controllers

import (
	"taprobane/config"
	"taprobane/constants"
	"taprobane/dto"
	"taprobane/middleware"
	"taprobane/models"
	"taprobane/response"
	"taprobane/services"
	"taprobane/validator"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

const accommodationCache = "accommodations"

func GetAccommodations(c *gin.Context) {
	query := services.ParseListQuery(c)

	var cached response.Envelope
	cacheKey := services.ListCacheKey(accommodationCache, c.Request.URL.RawQuery)
	if err := services.GetFromRedis(config.Ctx, config.RedisClient, cacheKey, &cached); err == nil {
		c.JSON(200, cached)
		return
	}

	tx := services.AccommodationQuery(config.DB.Model(&models.Accommodation{}), query)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var accommodations []models.Accommodation
	err := tx.Order(services.OrderClause(query.Sort, "-createdAt")).
		Offset(services.Offset(query.Page, query.Limit)).
		Limit(query.Limit).
		Preload("Provider").
		Find(&accommodations).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	count := len(accommodations)
	pages := services.Pages(total, query.Limit)

	envelope := response.Envelope{
		Success: true,
		Data:    accommodations,
		Count:   &count,
		Total:   &total,
		Page:    &query.Page,
		Pages:   &pages,
	}
	services.CacheList(config.Ctx, config.RedisClient, accommodationCache, c.Request.URL.RawQuery, envelope)

	c.JSON(200, envelope)
}

// SearchAccommodations is the free-text + geo search. When nothing matches a
// text query, a closest-match suggestion over active accommodation names is
// included.
func SearchAccommodations(c *gin.Context) {
	query := services.ParseListQuery(c)

	tx := services.AccommodationQuery(config.DB.Model(&models.Accommodation{}), query)

	var accommodations []models.Accommodation
	if err := tx.Limit(20).Preload("Provider").Find(&accommodations).Error; err != nil {
		response.ServerError(c)
		return
	}

	if len(accommodations) == 0 && query.Q != "" {
		var names []string
		config.DB.Model(&models.Accommodation{}).Where("is_active = ?", true).Pluck("name", &names)
		if suggestion := services.Suggest(names, query.Q); suggestion != "" {
			response.SuccessMessage(c, "Did you mean: "+suggestion, accommodations)
			return
		}
	}

	response.SuccessCount(c, accommodations, len(accommodations))
}

func GetAccommodation(c *gin.Context) {
	var accommodation models.Accommodation
	err := config.DB.Preload("Provider").First(&accommodation, c.Param("id")).Error
	if err != nil || !accommodation.IsActive {
		response.NotFound(c, "Accommodation not found")
		return
	}

	response.Success(c, accommodation)
}

func CreateAccommodation(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var input dto.CreateAccommodationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidateAccommodationType(input.Type); err != nil {
		response.FromError(c, err)
		return
	}
	if err := validator.ValidateRegion(input.Region); err != nil {
		response.FromError(c, err)
		return
	}

	accommodation := models.Accommodation{
		Name:          input.Name,
		Type:          input.Type,
		Description:   input.Description,
		Location:      input.Location,
		Lat:           input.Lat,
		Lng:           input.Lng,
		Images:        pq.StringArray(input.Images),
		PricePerNight: input.PricePerNight,
		Amenities:     pq.StringArray(input.Amenities),
		RoomTypes:     pq.StringArray(input.RoomTypes),
		BestFor:       input.BestFor,
		Region:        input.Region,
		IsActive:      true,
		ProviderID:    &user.ID,
	}
	if input.Checkin != "" {
		accommodation.CheckinTime = input.Checkin
	}
	if input.Checkout != "" {
		accommodation.CheckoutTime = input.Checkout
	}

	if err := config.DB.Create(&accommodation).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateListCache(config.Ctx, config.RedisClient, accommodationCache)
	response.Created(c, accommodation)
}

func UpdateAccommodation(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var accommodation models.Accommodation
	if err := config.DB.First(&accommodation, c.Param("id")).Error; err != nil {
		response.NotFound(c, "Accommodation not found")
		return
	}

	if !canManageAccommodation(user, &accommodation) {
		response.Forbidden(c, "Not authorized to update this accommodation")
		return
	}

	var input dto.UpdateAccommodationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if input.Type != nil {
		if err := validator.ValidateAccommodationType(*input.Type); err != nil {
			response.FromError(c, err)
			return
		}
	}
	if input.Region != nil {
		if err := validator.ValidateRegion(*input.Region); err != nil {
			response.FromError(c, err)
			return
		}
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Type != nil {
		updates["type"] = *input.Type
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Location != nil {
		updates["location"] = *input.Location
	}
	if input.Lat != nil {
		updates["lat"] = *input.Lat
	}
	if input.Lng != nil {
		updates["lng"] = *input.Lng
	}
	if input.Rating != nil {
		updates["rating"] = *input.Rating
	}
	if input.Reviews != nil {
		updates["reviews"] = *input.Reviews
	}
	if input.Images != nil {
		updates["images"] = pq.StringArray(*input.Images)
	}
	if input.PricePerNight != nil {
		updates["price_per_night"] = *input.PricePerNight
	}
	if input.Amenities != nil {
		updates["amenities"] = pq.StringArray(*input.Amenities)
	}
	if input.RoomTypes != nil {
		updates["room_types"] = pq.StringArray(*input.RoomTypes)
	}
	if input.Checkin != nil {
		updates["checkin_time"] = *input.Checkin
	}
	if input.Checkout != nil {
		updates["checkout_time"] = *input.Checkout
	}
	if input.BestFor != nil {
		updates["best_for"] = *input.BestFor
	}
	if input.Region != nil {
		updates["region"] = *input.Region
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&accommodation).Updates(updates).Error; err != nil {
			response.ServerError(c)
			return
		}
	}

	services.InvalidateListCache(config.Ctx, config.RedisClient, accommodationCache)
	response.Success(c, accommodation)
}

// DeleteAccommodation soft-deletes: the row stays, listings and direct
// fetches stop returning it.
func DeleteAccommodation(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var accommodation models.Accommodation
	if err := config.DB.First(&accommodation, c.Param("id")).Error; err != nil {
		response.NotFound(c, "Accommodation not found")
		return
	}

	if !canManageAccommodation(user, &accommodation) {
		response.Forbidden(c, "Not authorized to delete this accommodation")
		return
	}

	if err := config.DB.Model(&accommodation).Update("is_active", false).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateListCache(config.Ctx, config.RedisClient, accommodationCache)
	response.SuccessMessage(c, "Accommodation deleted successfully", nil)
}

func canManageAccommodation(user *models.User, accommodation *models.Accommodation) bool {
	if user.Role == constants.RoleAdmin {
		return true
	}
	return accommodation.ProviderID != nil && *accommodation.ProviderID == user.ID
}
