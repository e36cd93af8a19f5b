package response

import (
	"net/http"

	apperrors "taprobane/errors"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform response body. Every success carries success=true
// and one of Data/User/Token; every failure carries success=false and Message.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Token   string      `json:"token,omitempty"`
	User    interface{} `json:"user,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Total   *int64      `json:"total,omitempty"`
	Page    *int        `json:"page,omitempty"`
	Pages   *int        `json:"pages,omitempty"`
}

// Success returns 200 with a data payload.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

// Created returns 201 with a data payload.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Data: data})
}

// SuccessMessage returns 200 with a message and optional data.
func SuccessMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

// Auth returns a token plus a user projection, 201 on registration.
func Auth(c *gin.Context, status int, token string, user interface{}) {
	c.JSON(status, Envelope{Success: true, Token: token, User: user})
}

// SuccessUser returns 200 with a user payload.
func SuccessUser(c *gin.Context, user interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, User: user})
}

// SuccessCount returns a non-paginated listing with its item count.
func SuccessCount(c *gin.Context, data interface{}, count int) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Count: &count})
}

// SuccessList returns a paginated listing. pages = ceil(total/limit).
func SuccessList(c *gin.Context, data interface{}, count int, total int64, page, pages int) {
	c.JSON(http.StatusOK, Envelope{
		Success: true,
		Data:    data,
		Count:   &count,
		Total:   &total,
		Page:    &page,
		Pages:   &pages,
	})
}

// Error returns a failure envelope with an explicit status.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{Success: false, Message: message})
}

// FromError maps an AppError to its status; anything else is a 500.
func FromError(c *gin.Context, err error) {
	if appErr := apperrors.GetAppError(err); appErr != nil {
		Error(c, appErr.Status, appErr.Message)
		return
	}
	ServerError(c)
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Not authorized to access this route"
	}
	Error(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "Not authorized to perform this action"
	}
	Error(c, http.StatusForbidden, message)
}

func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(c, http.StatusNotFound, message)
}

func ServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Server error")
}
