package controllers

import (
	"time"

	"taprobane/config"
	"taprobane/constants"
	"taprobane/dto"
	"taprobane/models"
	"taprobane/response"
	"taprobane/services"
	"taprobane/validator"

	"github.com/gin-gonic/gin"
)

func CreateContact(c *gin.Context) {
	var input dto.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Please provide all required fields")
		return
	}

	contact := models.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Subject: input.Subject,
		Message: input.Message,
	}

	if err := config.DB.Create(&contact).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.Broadcast(hub, services.EventContactReceived, contact)
	c.JSON(201, response.Envelope{Success: true, Message: "Your message has been sent successfully", Data: contact})
}

func GetContacts(c *gin.Context) {
	query := services.ParseListQuery(c)
	if query.Limit == services.DefaultLimit && c.Query("limit") == "" {
		query.Limit = 20
	}

	tx := config.DB.Model(&models.ContactMessage{})
	if query.Status != "" {
		tx = tx.Where("status = ?", query.Status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var contacts []models.ContactMessage
	err := tx.Order("created_at DESC").
		Offset(services.Offset(query.Page, query.Limit)).
		Limit(query.Limit).
		Find(&contacts).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessList(c, contacts, len(contacts), total, query.Page, services.Pages(total, query.Limit))
}

func GetContact(c *gin.Context) {
	var contact models.ContactMessage
	if err := config.DB.First(&contact, c.Param("id")).Error; err != nil {
		response.NotFound(c, "Contact message not found")
		return
	}

	response.Success(c, contact)
}

func UpdateContactStatus(c *gin.Context) {
	var input dto.ContactStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid status")
		return
	}
	if err := validator.ValidateContactStatus(input.Status); err != nil {
		response.FromError(c, err)
		return
	}

	var contact models.ContactMessage
	if err := config.DB.First(&contact, c.Param("id")).Error; err != nil {
		response.NotFound(c, "Contact message not found")
		return
	}

	if err := config.DB.Model(&contact).Update("status", input.Status).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, contact)
}

func ReplyToContact(c *gin.Context) {
	var input dto.ContactReplyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Please provide a reply message")
		return
	}

	var contact models.ContactMessage
	if err := config.DB.First(&contact, c.Param("id")).Error; err != nil {
		response.NotFound(c, "Contact message not found")
		return
	}

	now := time.Now()
	updates := map[string]interface{}{
		"reply_message": input.ReplyMessage,
		"status":        constants.ContactStatusReplied,
		"replied_at":    now,
	}
	if err := config.DB.Model(&contact).Updates(updates).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessMessage(c, "Reply sent successfully", contact)
}
