package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"signature-seal-backend/models"
	"signature-seal-backend/repository"
	"signature-seal-backend/services"
	"signature-seal-backend/utils"
)

// CreateBookingInput defines the expected JSON structure for a booking
// submission. Mileage is untyped because the form sends it as either a
// number or a string.
type CreateBookingInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Service string `json:"service"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
	Mileage any    `json:"mileage"`
}

// BookingController handles the booking workflow: persist, then
// best-effort operator notification.
type BookingController struct {
	store    repository.BookingStore
	notifier services.BookingNotifier
	logger   *zap.Logger
}

func NewBookingController(store repository.BookingStore, notifier services.BookingNotifier, logger *zap.Logger) *BookingController {
	return &BookingController{store: store, notifier: notifier, logger: logger}
}

// CreateBooking validates and persists a submission, then notifies the
// operator. Notification failures never fail the request.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Name == "" || input.Email == "" || input.Service == "" ||
		input.Date == "" || input.Time == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	booking := models.Booking{
		Name:    input.Name,
		Email:   input.Email,
		Service: input.Service,
		Date:    parseBookingDate(input.Date),
		Time:    input.Time,
		Address: input.Address,
		Notes:   input.Notes,
		Mileage: services.CoerceMileage(input.Mileage),
	}

	if err := bc.store.Create(&booking); err != nil {
		bc.logger.Error("booking persist failed", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Booking failed")
		return
	}

	bc.notifier.BookingCreated(booking)

	bc.logger.Info("booking confirmed",
		zap.String("bookingId", booking.ID.String()),
		zap.String("name", booking.Name))
	c.JSON(http.StatusOK, booking)
}

// GetBookings returns every booking, newest first.
func (bc *BookingController) GetBookings(c *gin.Context) {
	bookings, err := bc.store.FindAll()
	if err != nil {
		bc.logger.Error("failed to fetch bookings", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// DeleteBooking removes a booking by id. The admin panel treats a missing
// record the same as a deleted one, so unknown and malformed ids still
// report success.
func (bc *BookingController) DeleteBooking(c *gin.Context) {
	if id, err := uuid.Parse(c.Param("id")); err == nil {
		if err := bc.store.Delete(id); err != nil {
			bc.logger.Error("failed to delete booking", zap.Error(err))
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete booking")
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

// parseBookingDate accepts the handful of formats the booking form has
// produced over time. Anything else becomes the zero time; the submission
// is still accepted.
func parseBookingDate(s string) time.Time {
	layouts := []string{"2006-01-02", time.RFC3339, "01/02/2006", "January 2, 2006"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
