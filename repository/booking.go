package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"signature-seal-backend/models"
)

// BookingStore is the persistence surface the handlers depend on.
type BookingStore interface {
	Create(booking *models.Booking) error
	FindAll() ([]models.Booking, error)
	FindByDateRange(start, end time.Time) ([]models.Booking, error)
	Delete(id uuid.UUID) error
}

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository returns a gorm-backed BookingStore.
func NewBookingRepository(db *gorm.DB) BookingStore {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(booking *models.Booking) error {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now()
	}
	return r.db.Create(booking).Error
}

// FindAll returns every booking, newest first.
func (r *bookingRepository) FindAll() ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Order("created_at desc").Find(&bookings).Error
	return bookings, err
}

// FindByDateRange returns bookings with an appointment date in [start, end),
// ordered by appointment date.
func (r *bookingRepository) FindByDateRange(start, end time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Where("date >= ? AND date < ?", start, end).
		Order("date asc").Find(&bookings).Error
	return bookings, err
}

// Delete removes the booking if it exists. Deleting an unknown id is not
// an error; the admin contract reports success either way.
func (r *bookingRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Booking{}, "id = ?", id).Error
}
