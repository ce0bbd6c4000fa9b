package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"

	"signature-seal-backend/config"
	"signature-seal-backend/models"
	"signature-seal-backend/repository"
	"signature-seal-backend/routes"
	"signature-seal-backend/services"
	"signature-seal-backend/utils"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()

	logger := utils.NewLogger(cfg.IsProduction())
	defer logger.Sync()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("Failed to connect database", zap.Error(err))
	}

	if err := db.AutoMigrate(&models.Booking{}); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	stripe.Key = cfg.StripeKey

	if cfg.SMSEnabled() {
		store := repository.NewBookingRepository(db)
		notifier := services.NewOperatorNotifier(cfg, logger)
		services.NewReminderService(store, notifier, logger).StartScheduler()
	}

	r := routes.SetupRouter(cfg, db, logger)

	logger.Info("Server running", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server exited", zap.Error(err))
	}
}
