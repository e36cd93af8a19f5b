package routes

import (
	"net/http"

	"taprobane/constants"
	"taprobane/controllers"
	middlewares "taprobane/middleware"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

func SetupRoutes(router *gin.Engine, m *melody.Melody) {
	controllers.InitHub(m)

	api := router.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register/tourist", controllers.RegisterTourist)
	auth.POST("/register/guide", controllers.RegisterGuide)
	auth.POST("/login", controllers.Login)
	auth.POST("/google", controllers.AuthGoogle)
	auth.GET("/me", middlewares.AuthMiddleware(), controllers.GetMe)
	auth.PUT("/profile", middlewares.AuthMiddleware(), controllers.UpdateProfile)
	auth.PUT("/password", middlewares.AuthMiddleware(), controllers.UpdatePassword)

	accommodations := api.Group("/accommodations")
	accommodations.GET("", controllers.GetAccommodations)
	accommodations.GET("/search", controllers.SearchAccommodations)
	accommodations.GET("/:id", controllers.GetAccommodation)
	accommodations.POST("", middlewares.AuthMiddleware(constants.RoleGuide, constants.RoleAdmin), controllers.CreateAccommodation)
	accommodations.PUT("/:id", middlewares.AuthMiddleware(constants.RoleGuide, constants.RoleAdmin), controllers.UpdateAccommodation)
	accommodations.DELETE("/:id", middlewares.AuthMiddleware(constants.RoleGuide, constants.RoleAdmin), controllers.DeleteAccommodation)

	attractions := api.Group("/attractions")
	attractions.GET("", controllers.GetAttractions)
	attractions.GET("/search", controllers.SearchAttractions)
	attractions.GET("/:id", controllers.GetAttraction)
	attractions.POST("", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.CreateAttraction)
	attractions.PUT("/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.UpdateAttraction)
	attractions.DELETE("/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.DeleteAttraction)

	// Guides are registered users; no create or delete here.
	guides := api.Group("/guides")
	guides.GET("", controllers.GetGuides)
	guides.GET("/search", controllers.SearchGuides)
	guides.GET("/:id", controllers.GetGuide)
	guides.PUT("/:id", middlewares.AuthMiddleware(constants.RoleGuide, constants.RoleAdmin), controllers.UpdateGuide)
	guides.PUT("/:id/verify", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.VerifyGuide)

	bookings := api.Group("/bookings", middlewares.AuthMiddleware())
	bookings.POST("", controllers.CreateBooking)
	bookings.GET("", controllers.GetUserBookings)
	bookings.GET("/all", middlewares.AuthMiddleware(constants.RoleGuide, constants.RoleAdmin), controllers.GetBookings)
	bookings.GET("/:id", controllers.GetBooking)
	bookings.PUT("/:id", controllers.UpdateBooking)
	bookings.PUT("/:id/status", controllers.UpdateBookingStatus)
	bookings.DELETE("/:id", controllers.CancelBooking)

	trips := api.Group("/trips")
	trips.GET("/public", controllers.GetPublicTrips)
	trips.POST("", middlewares.AuthMiddleware(), controllers.CreateTrip)
	trips.GET("", middlewares.AuthMiddleware(), controllers.GetTrips)
	trips.GET("/:id", middlewares.AuthMiddleware(), controllers.GetTrip)
	trips.PUT("/:id", middlewares.AuthMiddleware(), controllers.UpdateTrip)
	trips.DELETE("/:id", middlewares.AuthMiddleware(), controllers.DeleteTrip)

	contact := api.Group("/contact")
	contact.POST("", controllers.CreateContact)
	contact.GET("", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.GetContacts)
	contact.GET("/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.GetContact)
	contact.PUT("/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.UpdateContactStatus)
	contact.POST("/:id/reply", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.ReplyToContact)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
}
