package controllers

import (
	"taprobane/config"
	"taprobane/constants"
	"taprobane/dto"
	"taprobane/errors"
	"taprobane/middleware"
	"taprobane/models"
	"taprobane/response"
	"taprobane/services"
	"taprobane/validator"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

// hub is the websocket broadcaster for admin dashboards, set at startup.
var hub *melody.Melody

func InitHub(m *melody.Melody) {
	hub = m
}

// CreateBooking validates the booking type before anything is persisted,
// prices the booking and snapshots the requester's contact info.
func CreateBooking(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var input dto.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var booking models.Booking
	switch input.Type {
	case constants.BookingTypeAccommodation:
		if input.Accommodation == nil || input.CheckIn == nil || input.CheckOut == nil {
			response.BadRequest(c, "Please provide accommodation, check-in and check-out dates")
			return
		}

		var accommodation models.Accommodation
		err := config.DB.First(&accommodation, *input.Accommodation).Error
		if err != nil || !accommodation.IsActive {
			response.NotFound(c, "Accommodation not found")
			return
		}

		guests := input.Guests
		if guests < 1 {
			guests = 1
		}

		booking = models.Booking{
			UserID:          user.ID,
			Type:            constants.BookingTypeAccommodation,
			AccommodationID: input.Accommodation,
			CheckIn:         input.CheckIn,
			CheckOut:        input.CheckOut,
			Guests:          guests,
			RoomType:        input.RoomType,
			TotalAmount:     services.AccommodationTotal(accommodation.PricePerNight, *input.CheckIn, *input.CheckOut, guests),
			SpecialRequests: input.SpecialRequests,
		}

	case constants.BookingTypeGuide:
		if input.Guide == nil || input.StartDate == nil {
			response.BadRequest(c, "Please provide guide and start date")
			return
		}
		if err := validator.ValidateDuration(input.Duration); err != nil {
			response.FromError(c, err)
			return
		}

		var guide models.User
		err := config.DB.First(&guide, *input.Guide).Error
		if err != nil || guide.Role != constants.RoleGuide || !guide.IsActive {
			response.NotFound(c, "Guide not found")
			return
		}

		duration := input.Duration
		if duration == "" {
			duration = constants.DurationDaily
		}
		end := services.GuideBookingEnd(*input.StartDate, input.EndDate)

		booking = models.Booking{
			UserID:          user.ID,
			Type:            constants.BookingTypeGuide,
			GuideID:         input.Guide,
			StartDate:       input.StartDate,
			EndDate:         &end,
			Duration:        duration,
			TourType:        input.TourType,
			TotalAmount:     services.GuideTotal(duration, guide.HourlyRate, guide.DailyRate, *input.StartDate, end),
			SpecialRequests: input.SpecialRequests,
		}

	default:
		response.FromError(c, errors.BadRequest(errors.ErrCodeInvalidBookingType, "Invalid booking type"))
		return
	}

	booking.Status = constants.BookingStatusPending
	booking.PaymentStatus = constants.PaymentStatusPending
	booking.ContactInfo = models.ContactInfo{
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
	}

	if err := config.DB.Create(&booking).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.Broadcast(hub, services.EventBookingCreated, booking)
	response.Created(c, booking)
}

// GetUserBookings lists the requester's own bookings, newest first.
func GetUserBookings(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var bookings []models.Booking
	err := config.DB.Where("user_id = ?", user.ID).
		Preload("Accommodation").
		Preload("Guide").
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessCount(c, bookings, len(bookings))
}

// GetBookings is the privileged listing: admins see everything, guides only
// the bookings assigned to them.
func GetBookings(c *gin.Context) {
	user := middleware.CurrentUser(c)

	tx := config.DB.Model(&models.Booking{})
	if user.Role == constants.RoleGuide {
		tx = tx.Where("guide_id = ?", user.ID)
	}

	var bookings []models.Booking
	err := tx.Preload("User").
		Preload("Accommodation").
		Preload("Guide").
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessCount(c, bookings, len(bookings))
}

func GetBooking(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var booking models.Booking
	err := config.DB.Preload("User").
		Preload("Accommodation").
		Preload("Guide").
		First(&booking, c.Param("id")).Error
	if err != nil {
		response.NotFound(c, "Booking not found")
		return
	}

	if !canViewBooking(user, &booking) {
		response.Forbidden(c, "Not authorized to view this booking")
		return
	}

	response.Success(c, booking)
}

func UpdateBooking(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var booking models.Booking
	if err := config.DB.First(&booking, c.Param("id")).Error; err != nil {
		response.NotFound(c, "Booking not found")
		return
	}

	if booking.UserID != user.ID && user.Role != constants.RoleAdmin {
		response.Forbidden(c, "Not authorized to update this booking")
		return
	}

	var input dto.UpdateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updates := map[string]interface{}{}
	if input.CheckIn != nil {
		updates["check_in"] = *input.CheckIn
	}
	if input.CheckOut != nil {
		updates["check_out"] = *input.CheckOut
	}
	if input.Guests != nil {
		updates["guests"] = *input.Guests
	}
	if input.RoomType != nil {
		updates["room_type"] = *input.RoomType
	}
	if input.StartDate != nil {
		updates["start_date"] = *input.StartDate
	}
	if input.EndDate != nil {
		updates["end_date"] = *input.EndDate
	}
	if input.TourType != nil {
		updates["tour_type"] = *input.TourType
	}
	if input.SpecialRequests != nil {
		updates["special_requests"] = *input.SpecialRequests
	}
	if input.PaymentStatus != nil {
		if user.Role != constants.RoleAdmin {
			response.Forbidden(c, "Not authorized to update payment status")
			return
		}
		updates["payment_status"] = *input.PaymentStatus
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&booking).Updates(updates).Error; err != nil {
			response.ServerError(c)
			return
		}
	}

	services.Broadcast(hub, services.EventBookingUpdated, booking)
	response.Success(c, booking)
}

// UpdateBookingStatus routes every status change through the state machine.
// Owners may only cancel; admins may confirm, complete and cancel.
func UpdateBookingStatus(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var booking models.Booking
	if err := config.DB.First(&booking, c.Param("id")).Error; err != nil {
		response.NotFound(c, "Booking not found")
		return
	}

	if booking.UserID != user.ID && user.Role != constants.RoleAdmin {
		response.Forbidden(c, "Not authorized to update this booking")
		return
	}

	var input dto.BookingStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if user.Role != constants.RoleAdmin && input.Status != constants.BookingStatusCancelled {
		response.Forbidden(c, "Not authorized to set this status")
		return
	}

	if err := booking.Transition(input.Status); err != nil {
		response.FromError(c, err)
		return
	}

	if err := config.DB.Model(&booking).Update("status", booking.Status).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.Broadcast(hub, services.EventBookingUpdated, booking)
	response.Success(c, booking)
}

// CancelBooking is the DELETE action; it cancels through the state machine
// rather than removing the row.
func CancelBooking(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var booking models.Booking
	if err := config.DB.First(&booking, c.Param("id")).Error; err != nil {
		response.NotFound(c, "Booking not found")
		return
	}

	if booking.UserID != user.ID && user.Role != constants.RoleAdmin {
		response.Forbidden(c, "Not authorized to cancel this booking")
		return
	}

	if err := booking.Transition(constants.BookingStatusCancelled); err != nil {
		response.FromError(c, err)
		return
	}

	if err := config.DB.Model(&booking).Update("status", booking.Status).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.Broadcast(hub, services.EventBookingUpdated, booking)
	response.SuccessMessage(c, "Booking cancelled successfully", booking)
}

func canViewBooking(user *models.User, booking *models.Booking) bool {
	if booking.UserID == user.ID || user.Role == constants.RoleAdmin {
		return true
	}
	return user.Role == constants.RoleGuide && booking.GuideID != nil && *booking.GuideID == user.ID
}
