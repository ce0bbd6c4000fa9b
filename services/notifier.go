package services

import (
	"fmt"
	"time"

	"github.com/resend/resend-go/v2"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"

	"signature-seal-backend/config"
	"signature-seal-backend/models"
	"signature-seal-backend/utils"
)

// BookingNotifier delivers operator notifications for new bookings.
// Implementations are best-effort: they log their own failures and never
// return them, so the booking response cannot be affected.
type BookingNotifier interface {
	BookingCreated(booking models.Booking)
}

// OperatorNotifier sends booking alerts to the operator via Resend email
// and Twilio SMS. Either channel is skipped when unconfigured.
type OperatorNotifier struct {
	cfg    config.Config
	logger *zap.Logger
	email  *resend.Client
	sms    *twilio.RestClient
}

func NewOperatorNotifier(cfg config.Config, logger *zap.Logger) *OperatorNotifier {
	n := &OperatorNotifier{cfg: cfg, logger: logger}
	if cfg.EmailEnabled() {
		n.email = resend.NewClient(cfg.ResendAPIKey)
	}
	if cfg.TwilioAccountSID != "" && cfg.SMSEnabled() {
		n.sms = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		})
	}
	return n
}

// BookingCreated fires both channels sequentially. Failures go to the log.
func (n *OperatorNotifier) BookingCreated(b models.Booking) {
	n.sendEmail(b)
	n.SendOperatorSMS(fmt.Sprintf("New booking: %s on %s at %s (%s)",
		b.Name, formatDate(b.Date), b.Time, b.Service))
}

func (n *OperatorNotifier) sendEmail(b models.Booking) {
	if n.email == nil {
		return
	}

	calendarLink := utils.BuildCalendarLink(
		fmt.Sprintf("Notary Appointment - %s", b.Name),
		b.Date, b.Time,
		fmt.Sprintf("%s for %s (%s)", b.Service, b.Name, b.Email),
		b.Address,
	)

	html := fmt.Sprintf(`<h2>New Booking Request</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Service:</strong> %s</p>
<p><strong>Date:</strong> %s</p>
<p><strong>Time:</strong> %s</p>
<p><strong>Address:</strong> %s</p>
<p><strong>Mileage:</strong> %.1f miles</p>
<p><strong>Notes:</strong> %s</p>
<p><a href="%s">Add to Google Calendar</a></p>`,
		b.Name, b.Email, b.Service, formatDate(b.Date), b.Time,
		b.Address, b.Mileage, b.Notes, calendarLink)

	params := &resend.SendEmailRequest{
		From:    n.cfg.EmailFrom,
		To:      []string{n.cfg.OperatorEmail},
		Subject: fmt.Sprintf("New Booking: %s - %s", b.Name, b.Service),
		Html:    html,
		ReplyTo: b.Email,
	}

	if _, err := n.email.Emails.Send(params); err != nil {
		n.logger.Error("booking email failed",
			zap.String("bookingId", b.ID.String()), zap.Error(err))
		return
	}
	n.logger.Info("booking email sent", zap.String("bookingId", b.ID.String()))
}

// SendOperatorSMS texts the fixed operator number. No-op when SMS is not
// configured; failures are logged and swallowed.
func (n *OperatorNotifier) SendOperatorSMS(body string) {
	if n.sms == nil {
		return
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(n.cfg.OperatorPhone)
	params.SetFrom(n.cfg.TwilioPhoneNumber)
	params.SetBody(body)

	resp, err := n.sms.Api.CreateMessage(params)
	if err != nil {
		n.logger.Error("operator SMS failed", zap.Error(err))
		return
	}
	if resp.Sid != nil {
		n.logger.Info("operator SMS sent", zap.String("sid", *resp.Sid))
	}
}

func formatDate(d time.Time) string {
	if d.IsZero() {
		return "Unknown date"
	}
	return d.Format("Mon, Jan 2 2006")
}
