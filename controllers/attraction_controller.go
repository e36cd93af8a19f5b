package controllers

import (
	"taprobane/config"
	"taprobane/dto"
	"taprobane/models"
	"taprobane/response"
	"taprobane/services"
	"taprobane/validator"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

const attractionCache = "attractions"

func GetAttractions(c *gin.Context) {
	query := services.ParseListQuery(c)

	var cached response.Envelope
	cacheKey := services.ListCacheKey(attractionCache, c.Request.URL.RawQuery)
	if err := services.GetFromRedis(config.Ctx, config.RedisClient, cacheKey, &cached); err == nil {
		c.JSON(200, cached)
		return
	}

	tx := services.AttractionQuery(config.DB.Model(&models.Attraction{}), query)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var attractions []models.Attraction
	err := tx.Order(services.OrderClause(query.Sort, "-createdAt")).
		Offset(services.Offset(query.Page, query.Limit)).
		Limit(query.Limit).
		Find(&attractions).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	count := len(attractions)
	pages := services.Pages(total, query.Limit)

	envelope := response.Envelope{
		Success: true,
		Data:    attractions,
		Count:   &count,
		Total:   &total,
		Page:    &query.Page,
		Pages:   &pages,
	}
	services.CacheList(config.Ctx, config.RedisClient, attractionCache, c.Request.URL.RawQuery, envelope)

	c.JSON(200, envelope)
}

func SearchAttractions(c *gin.Context) {
	query := services.ParseListQuery(c)

	tx := services.AttractionQuery(config.DB.Model(&models.Attraction{}), query)

	var attractions []models.Attraction
	if err := tx.Limit(20).Find(&attractions).Error; err != nil {
		response.ServerError(c)
		return
	}

	if len(attractions) == 0 && query.Q != "" {
		var names []string
		config.DB.Model(&models.Attraction{}).Where("is_active = ?", true).Pluck("name", &names)
		if suggestion := services.Suggest(names, query.Q); suggestion != "" {
			response.SuccessMessage(c, "Did you mean: "+suggestion, attractions)
			return
		}
	}

	response.SuccessCount(c, attractions, len(attractions))
}

func GetAttraction(c *gin.Context) {
	var attraction models.Attraction
	err := config.DB.First(&attraction, c.Param("id")).Error
	if err != nil || !attraction.IsActive {
		response.NotFound(c, "Attraction not found")
		return
	}

	response.Success(c, attraction)
}

func CreateAttraction(c *gin.Context) {
	var input dto.CreateAttractionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidateAttractionCategory(input.Category); err != nil {
		response.FromError(c, err)
		return
	}

	attraction := models.Attraction{
		Name:            input.Name,
		Description:     input.Description,
		Category:        input.Category,
		Lat:             input.Lat,
		Lng:             input.Lng,
		Duration:        input.Duration,
		Images:          pq.StringArray(input.Images),
		BestTimeToVisit: input.BestTimeToVisit,
		OpeningHours:    input.OpeningHours,
		IsActive:        true,
	}
	if input.EntranceFee != "" {
		attraction.EntranceFee = input.EntranceFee
	}

	if err := config.DB.Create(&attraction).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateListCache(config.Ctx, config.RedisClient, attractionCache)
	response.Created(c, attraction)
}

func UpdateAttraction(c *gin.Context) {
	var attraction models.Attraction
	if err := config.DB.First(&attraction, c.Param("id")).Error; err != nil {
		response.NotFound(c, "Attraction not found")
		return
	}

	var input dto.UpdateAttractionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if input.Category != nil {
		if err := validator.ValidateAttractionCategory(*input.Category); err != nil {
			response.FromError(c, err)
			return
		}
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Category != nil {
		updates["category"] = *input.Category
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
	if input.EntranceFee != nil {
		updates["entrance_fee"] = *input.EntranceFee
	}
	if input.Duration != nil {
		updates["duration"] = *input.Duration
	}
	if input.Images != nil {
		updates["images"] = pq.StringArray(*input.Images)
	}
	if input.BestTimeToVisit != nil {
		updates["best_time_to_visit"] = *input.BestTimeToVisit
	}
	if input.OpeningHours != nil {
		updates["opening_hours"] = *input.OpeningHours
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&attraction).Updates(updates).Error; err != nil {
			response.ServerError(c)
			return
		}
	}

	services.InvalidateListCache(config.Ctx, config.RedisClient, attractionCache)
	response.Success(c, attraction)
}

func DeleteAttraction(c *gin.Context) {
	var attraction models.Attraction
	if err := config.DB.First(&attraction, c.Param("id")).Error; err != nil {
		response.NotFound(c, "Attraction not found")
		return
	}

	if err := config.DB.Model(&attraction).Update("is_active", false).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateListCache(config.Ctx, config.RedisClient, attractionCache)
	response.SuccessMessage(c, "Attraction deleted successfully", nil)
}
