package main

import (
	"log"

	"taprobane/config"
	"taprobane/jobs"
	"taprobane/models"
	"taprobane/routes"
)

func migrate() {
	err := config.DB.AutoMigrate(
		&models.User{},
		&models.Accommodation{},
		&models.Attraction{},
		&models.Booking{},
		&models.Trip{},
		&models.ContactMessage{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}
}

func main() {
	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	migrate()

	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, m)

	if err := router.Run(":" + config.App.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
