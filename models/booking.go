package models

import (
	"time"

	"github.com/google/uuid"
)

// Booking is a single client appointment request. Bookings are created,
// listed, and deleted; there is no update path.
type Booking struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name    string    `gorm:"not null" json:"name"`
	Email   string    `gorm:"not null" json:"email"`
	Service string    `gorm:"not null" json:"service"`

	// Date is the appointment day. An unparseable submission is stored as
	// the zero time rather than rejected.
	Date time.Time `json:"date"`

	// Time is a display label like "2:00 PM", kept verbatim.
	Time    string  `gorm:"not null" json:"time"`
	Address string  `json:"address"`
	Notes   string  `json:"notes"`
	Mileage float64 `json:"mileage"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}
