package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"signature-seal-backend/config"
	"signature-seal-backend/controllers"
	"signature-seal-backend/repository"
	"signature-seal-backend/services"
	"signature-seal-backend/utils"
)

func SetupRouter(cfg config.Config, db *gorm.DB, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))

	r.Use(config.PerformanceLogger(logger))

	store := repository.NewBookingRepository(db)
	notifier := services.NewOperatorNotifier(cfg, logger)

	bookingController := controllers.NewBookingController(store, notifier, logger)
	checkoutController := controllers.NewCheckoutController(cfg, logger)
	authController := controllers.NewAuthController(cfg, logger)

	// Health check
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Signature Seal API is running.")
	})

	api := r.Group("/api")
	{
		api.POST("/login", authController.Login)
		api.POST("/recommend", controllers.Recommend)
		api.POST("/create-checkout-session", checkoutController.CreateCheckoutSession)

		bookings := api.Group("/bookings")
		{
			bookings.POST("", bookingController.CreateBooking)

			bookings.Use(utils.AuthMiddleware(cfg.JWTSecret))
			bookings.GET("", bookingController.GetBookings)
			bookings.POST("/delete/:id", bookingController.DeleteBooking)
		}
	}

	return r
}
