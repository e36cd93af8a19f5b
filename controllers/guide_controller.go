package controllers

import (
	"taprobane/config"
	"taprobane/constants"
	"taprobane/dto"
	"taprobane/middleware"
	"taprobane/models"
	"taprobane/response"
	"taprobane/services"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

const guideCache = "guides"

// Guides are users with the guide role; there is no separate guide entity.
// They are created only through registration and never hard-deleted.

func GetGuides(c *gin.Context) {
	query := services.ParseListQuery(c)

	var cached response.Envelope
	cacheKey := services.ListCacheKey(guideCache, c.Request.URL.RawQuery)
	if err := services.GetFromRedis(config.Ctx, config.RedisClient, cacheKey, &cached); err == nil {
		c.JSON(200, cached)
		return
	}

	tx := services.GuideQuery(config.DB.Model(&models.User{}), query)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var guides []models.User
	err := tx.Order(services.OrderClause(query.Sort, "-rating")).
		Offset(services.Offset(query.Page, query.Limit)).
		Limit(query.Limit).
		Find(&guides).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	count := len(guides)
	pages := services.Pages(total, query.Limit)

	envelope := response.Envelope{
		Success: true,
		Data:    guides,
		Count:   &count,
		Total:   &total,
		Page:    &query.Page,
		Pages:   &pages,
	}
	services.CacheList(config.Ctx, config.RedisClient, guideCache, c.Request.URL.RawQuery, envelope)

	c.JSON(200, envelope)
}

func SearchGuides(c *gin.Context) {
	query := services.ParseListQuery(c)

	tx := services.GuideQuery(config.DB.Model(&models.User{}), query)

	var guides []models.User
	if err := tx.Order("rating DESC").Limit(20).Find(&guides).Error; err != nil {
		response.ServerError(c)
		return
	}

	if len(guides) == 0 && query.Q != "" {
		var names []string
		config.DB.Model(&models.User{}).
			Where("role = ? AND is_active = ?", constants.RoleGuide, true).
			Pluck("name", &names)
		if suggestion := services.Suggest(names, query.Q); suggestion != "" {
			response.SuccessMessage(c, "Did you mean: "+suggestion, guides)
			return
		}
	}

	response.SuccessCount(c, guides, len(guides))
}

func GetGuide(c *gin.Context) {
	var guide models.User
	err := config.DB.Where("id = ? AND role = ? AND is_active = ?",
		c.Param("id"), constants.RoleGuide, true).First(&guide).Error
	if err != nil {
		response.NotFound(c, "Guide not found")
		return
	}

	response.Success(c, guide)
}

// UpdateGuide lets a guide edit their own profile, or an admin edit any.
func UpdateGuide(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var guide models.User
	err := config.DB.Where("id = ? AND role = ?", c.Param("id"), constants.RoleGuide).First(&guide).Error
	if err != nil {
		response.NotFound(c, "Guide not found")
		return
	}

	if guide.ID != user.ID && user.Role != constants.RoleAdmin {
		response.Forbidden(c, "Not authorized to update this guide")
		return
	}

	var input dto.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.Avatar != nil {
		updates["avatar"] = *input.Avatar
	}
	if input.Bio != nil {
		updates["bio"] = *input.Bio
	}
	if input.Location != nil {
		updates["location"] = *input.Location
	}
	if input.Languages != nil {
		updates["languages"] = pq.StringArray(*input.Languages)
	}
	if input.Specialties != nil {
		updates["specialties"] = pq.StringArray(*input.Specialties)
	}
	if input.HourlyRate != nil {
		updates["hourly_rate"] = *input.HourlyRate
	}
	if input.DailyRate != nil {
		updates["daily_rate"] = *input.DailyRate
	}
	if input.Experience != nil {
		updates["experience"] = *input.Experience
	}
	if input.Highlights != nil {
		updates["highlights"] = pq.StringArray(*input.Highlights)
	}
	if input.Availability != nil {
		updates["availability"] = *input.Availability
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&guide).Updates(updates).Error; err != nil {
			response.ServerError(c)
			return
		}
	}

	services.InvalidateListCache(config.Ctx, config.RedisClient, guideCache)
	response.Success(c, guide)
}

// VerifyGuide is the admin action flipping the verified flag set false at
// registration.
func VerifyGuide(c *gin.Context) {
	var guide models.User
	err := config.DB.Where("id = ? AND role = ?", c.Param("id"), constants.RoleGuide).First(&guide).Error
	if err != nil {
		response.NotFound(c, "Guide not found")
		return
	}

	if err := config.DB.Model(&guide).Update("verified", true).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateListCache(config.Ctx, config.RedisClient, guideCache)
	response.Success(c, guide)
}
