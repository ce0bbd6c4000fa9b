// services/reminder.go
package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"signature-seal-backend/repository"
	"signature-seal-backend/utils"
)

// ReminderService texts the operator a morning summary of the day's
// appointments.
type ReminderService struct {
	store    repository.BookingStore
	notifier *OperatorNotifier
	logger   *zap.Logger
}

func NewReminderService(store repository.BookingStore, notifier *OperatorNotifier, logger *zap.Logger) *ReminderService {
	return &ReminderService{store: store, notifier: notifier, logger: logger}
}

// StartScheduler runs the daily summary every day at 9 AM.
func (s *ReminderService) StartScheduler() {
	c := cron.New()

	if _, err := c.AddFunc("0 9 * * *", s.SendDailySummary); err != nil {
		s.logger.Error("failed to schedule daily summary", zap.Error(err))
		return
	}

	c.Start()
	s.logger.Info("Reminder scheduler started")
}

// SendDailySummary fetches today's bookings and texts the operator a
// one-line-per-appointment digest. Quiet days send nothing.
func (s *ReminderService) SendDailySummary() {
	start := utils.BeginningOfDay(time.Now())
	end := start.AddDate(0, 0, 1)

	bookings, err := s.store.FindByDateRange(start, end)
	if err != nil {
		s.logger.Error("failed to fetch today's bookings", zap.Error(err))
		return
	}
	if len(bookings) == 0 {
		s.logger.Info("no appointments today, skipping summary")
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Today's appointments (%d):", len(bookings))
	for _, b := range bookings {
		fmt.Fprintf(&sb, "\n%s - %s (%s)", b.Time, b.Name, b.Service)
	}

	s.notifier.SendOperatorSMS(sb.String())
	s.logger.Info("daily summary processed", zap.Int("bookings", len(bookings)))
}
