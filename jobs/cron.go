package jobs

import (
	"log"

	"taprobane/config"
	"taprobane/services"
	"taprobane/utils"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// InitCronJobs schedules the daily booking sweep at midnight.
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	_, err := c.AddFunc("0 0 * * *", func() {
		if err := services.CompleteElapsedBookings(config.DB, m); err != nil {
			utils.LogError("booking sweep failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
