package utils

import (
	"net/url"
	"time"
)

const calendarBaseURL = "https://calendar.google.com/calendar/render"

// BuildCalendarLink formats a Google Calendar "add event" URL for an
// appointment. Pure string construction; nothing is called.
//
// When the time label parses as a clock time the event spans one hour from
// it, otherwise the link falls back to an all-day event on the date.
func BuildCalendarLink(title string, date time.Time, timeLabel, details, location string) string {
	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", title)
	q.Set("dates", eventDates(date, timeLabel))
	if details != "" {
		q.Set("details", details)
	}
	if location != "" {
		q.Set("location", location)
	}
	return calendarBaseURL + "?" + q.Encode()
}

func eventDates(date time.Time, timeLabel string) string {
	for _, layout := range []string{"3:04 PM", "3:04PM", "15:04"} {
		if clock, err := time.Parse(layout, timeLabel); err == nil {
			start := time.Date(date.Year(), date.Month(), date.Day(),
				clock.Hour(), clock.Minute(), 0, 0, time.UTC)
			end := start.Add(time.Hour)
			return start.Format("20060102T150405") + "/" + end.Format("20060102T150405")
		}
	}
	return date.Format("20060102") + "/" + date.AddDate(0, 0, 1).Format("20060102")
}
