package services

import (
	"time"

	"taprobane/constants"
	"taprobane/models"
	"taprobane/utils"

	"github.com/olahol/melody"
	"gorm.io/gorm"
)

// CompleteElapsedBookings moves confirmed bookings whose stay or tour has
// ended to completed. Run daily from the cron scheduler.
func CompleteElapsedBookings(db *gorm.DB, m *melody.Melody) error {
	now := time.Now()

	var bookings []models.Booking
	err := db.Where("status = ?", constants.BookingStatusConfirmed).
		Where("(type = ? AND check_out < ?) OR (type = ? AND end_date < ?)",
			constants.BookingTypeAccommodation, now,
			constants.BookingTypeGuide, now).
		Find(&bookings).Error
	if err != nil {
		return err
	}

	for i := range bookings {
		b := &bookings[i]
		if err := b.Transition(constants.BookingStatusCompleted); err != nil {
			utils.LogError("auto-complete booking %d: %v", b.ID, err)
			continue
		}
		if err := db.Model(b).Update("status", b.Status).Error; err != nil {
			utils.LogError("save booking %d: %v", b.ID, err)
			continue
		}
		Broadcast(m, EventBookingCompleted, b)
	}

	utils.LogInfo("auto-completed %d bookings", len(bookings))
	return nil
}
