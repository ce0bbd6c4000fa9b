package services

import (
	"math"
	"strconv"
	"strings"
)

// Checkout pricing constants, in cents.
const (
	LoanSigningFeeCents = 15000
	StandardFeeCents    = 3500
	FreeRadiusMiles     = 10.0
	PerMileRateCents    = 100
)

// LineItem is one priced unit handed to the payment session.
type LineItem struct {
	Name        string
	AmountCents int64
	Quantity    int64
}

// CheckoutLineItems computes the priced line items for a service request.
// Loan signings carry the flat loan rate, everything else the standard
// mobile notary fee. Travel beyond the free radius adds a per-mile
// surcharge as its own line item so the receipt shows it separately.
func CheckoutLineItems(service string, mileage float64) []LineItem {
	base := LineItem{
		Name:        "Mobile Notary Service",
		AmountCents: StandardFeeCents,
		Quantity:    1,
	}
	if strings.Contains(strings.ToLower(service), "loan") {
		base.Name = "Loan Signing Package"
		base.AmountCents = LoanSigningFeeCents
	}

	items := []LineItem{base}

	if extra := mileage - FreeRadiusMiles; extra > 0 {
		items = append(items, LineItem{
			Name:        "Travel Surcharge",
			AmountCents: int64(math.Round(extra * PerMileRateCents)),
			Quantity:    1,
		})
	}
	return items
}

// CoerceMileage turns whatever the booking form sent for mileage into a
// number of miles. Forms submit it as a number or a string; anything
// unparseable counts as zero rather than failing the request.
func CoerceMileage(raw any) float64 {
	switch v := raw.(type) {
	case float64:
		if math.IsNaN(v) || v < 0 {
			return 0
		}
		return v
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || f < 0 {
			return 0
		}
		return f
	default:
		return 0
	}
}
