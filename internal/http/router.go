// README: HTTP router registration; wires module services into gin routes.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sawari/internal/http/handlers"
	"sawari/internal/http/middleware"
	"sawari/internal/maps"
	"sawari/internal/modules/admin"
	"sawari/internal/modules/booking"
	"sawari/internal/modules/pricing"
	"sawari/internal/modules/query"
)

type RouterDeps struct {
	Pricing  *pricing.Service
	Booking  *booking.Service
	Bookings handlers.BookingInbox
	Queries  *query.Service
	Admin    *admin.Service
	Places   *maps.PlacesService // nil disables autocomplete
	Log      *zap.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logging(deps.Log),
		middleware.Recovery(deps.Log),
	)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	placesHandler := handlers.NewPlacesHandler(deps.Places)
	r.GET("/api/places/autocomplete", placesHandler.Autocomplete)

	pricingHandler := handlers.NewPricingHandler(deps.Pricing)
	r.GET("/api/cars", pricingHandler.Cars)

	bookingHandler := handlers.NewBookingHandler(deps.Booking)
	wizard := r.Group("/api/bookings/wizard")
	{
		wizard.POST("", bookingHandler.Start)
		wizard.GET("/:id", bookingHandler.Get)
		wizard.POST("/:id/contact", bookingHandler.SetContact)
		wizard.POST("/:id/back", bookingHandler.Back)
		wizard.POST("/:id/services/toggle", bookingHandler.ToggleService)
		wizard.POST("/:id/services/next", bookingHandler.Next)
		wizard.POST("/:id/payment", bookingHandler.SetPayment)
		wizard.POST("/:id/confirm", bookingHandler.Confirm)
	}

	queryHandler := handlers.NewQueryHandler(deps.Queries)
	r.POST("/api/queries", queryHandler.Submit)

	adminHandler := handlers.NewAdminHandler(deps.Admin, deps.Bookings, deps.Queries)
	r.POST("/api/admin/login", adminHandler.Login)

	back := r.Group("/api/admin", middleware.AdminAuth(deps.Admin))
	{
		back.POST("/logout", adminHandler.Logout)
		back.GET("/bookings", adminHandler.ListBookings)
		back.POST("/bookings/:id/status", adminHandler.UpdateBookingStatus)
		back.GET("/queries", adminHandler.ListQueries)
		back.POST("/queries/:id/read", adminHandler.MarkQueryRead)
		back.DELETE("/queries/:id", adminHandler.DeleteQuery)
	}

	return r
}
