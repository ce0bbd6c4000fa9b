package utils

import (
	"net/url"
	"strings"
	"testing"
	"time"
)

func mustParseQuery(t *testing.T, link string) url.Values {
	t.Helper()
	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("failed to parse link %q: %v", link, err)
	}
	return u.Query()
}

func TestBuildCalendarLink_TimedEvent(t *testing.T) {
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	link := BuildCalendarLink("Notary Appointment - Jane", date, "2:00 PM", "Loan Signing", "123 Main St")

	if !strings.HasPrefix(link, "https://calendar.google.com/calendar/render?") {
		t.Fatalf("unexpected link prefix: %q", link)
	}

	q := mustParseQuery(t, link)
	if q.Get("action") != "TEMPLATE" {
		t.Fatalf("expected TEMPLATE action, got %q", q.Get("action"))
	}
	if q.Get("dates") != "20260314T140000/20260314T150000" {
		t.Fatalf("unexpected dates: %q", q.Get("dates"))
	}
	if q.Get("location") != "123 Main St" {
		t.Fatalf("unexpected location: %q", q.Get("location"))
	}
	if q.Get("details") != "Loan Signing" {
		t.Fatalf("unexpected details: %q", q.Get("details"))
	}
}

func TestBuildCalendarLink_AllDayFallback(t *testing.T) {
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	link := BuildCalendarLink("Appointment", date, "afternoon-ish", "", "")

	q := mustParseQuery(t, link)
	if q.Get("dates") != "20260314/20260315" {
		t.Fatalf("expected all-day range, got %q", q.Get("dates"))
	}
	if _, ok := q["location"]; ok {
		t.Fatalf("empty location should be omitted")
	}
}

func TestBuildCalendarLink_Deterministic(t *testing.T) {
	date := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	a := BuildCalendarLink("T", date, "9:30 AM", "d", "l")
	b := BuildCalendarLink("T", date, "9:30 AM", "d", "l")
	if a != b {
		t.Fatalf("link construction is not deterministic:\n%s\n%s", a, b)
	}
}
