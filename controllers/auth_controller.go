package controllers

import (
	"net/http"

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

func RegisterTourist(c *gin.Context) {
	var input dto.RegisterTouristInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user := models.User{
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Nationality: input.Nationality,
		Preferences: pq.StringArray(input.Preferences),
		Role:        constants.RoleTourist,
	}

	if err := services.RegisterUser(config.DB, &user, input.Password); err != nil {
		response.FromError(c, err)
		return
	}

	token, err := services.IssueToken(user.ID)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Auth(c, http.StatusCreated, token, user.Public())
}

func RegisterGuide(c *gin.Context) {
	var input dto.RegisterGuideInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user := models.User{
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Role:        constants.RoleGuide,
		Bio:         input.Bio,
		Location:    input.Location,
		Languages:   pq.StringArray(input.Languages),
		Specialties: pq.StringArray(input.Specialties),
		HourlyRate:  input.HourlyRate,
		DailyRate:   input.DailyRate,
		Experience:  input.Experience,
		Highlights:  pq.StringArray(input.Highlights),
	}

	if err := services.RegisterUser(config.DB, &user, input.Password); err != nil {
		response.FromError(c, err)
		return
	}

	services.InvalidateProfileCaches(config.Ctx, config.RedisClient, user.Role)

	token, err := services.IssueToken(user.ID)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Auth(c, http.StatusCreated, token, user.Public())
}

func Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Please provide email and password")
		return
	}

	user, err := services.Authenticate(config.DB, input.Email, input.Password)
	if err != nil {
		response.FromError(c, err)
		return
	}

	token, err := services.IssueToken(user.ID)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Auth(c, http.StatusOK, token, user.Public())
}

func AuthGoogle(c *gin.Context) {
	var input dto.GoogleAuthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := services.AuthenticateGoogle(c.Request.Context(), config.DB, input.IDToken, config.App.GoogleClientID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	token, err := services.IssueToken(user.ID)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Auth(c, http.StatusOK, token, user.Public())
}

func GetMe(c *gin.Context) {
	response.SuccessUser(c, middleware.CurrentUser(c))
}

func UpdateProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)

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
	if input.Nationality != nil {
		updates["nationality"] = *input.Nationality
	}
	if input.Preferences != nil {
		updates["preferences"] = pq.StringArray(*input.Preferences)
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
		if err := config.DB.Model(user).Updates(updates).Error; err != nil {
			response.ServerError(c)
			return
		}
		services.InvalidateProfileCaches(config.Ctx, config.RedisClient, user.Role)
	}

	response.SuccessUser(c, user)
}

func UpdatePassword(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var input dto.ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Please provide current and new password")
		return
	}

	if err := services.ChangePassword(config.DB, user, input.CurrentPassword, input.NewPassword); err != nil {
		response.FromError(c, err)
		return
	}

	token, err := services.IssueToken(user.ID)
	if err != nil {
		response.ServerError(c)
		return
	}

	c.JSON(http.StatusOK, response.Envelope{Success: true, Token: token, Message: "Password updated successfully"})
}
