package agenda

import (
	"time"

	"campus-agenda/models"
)

// Bucket is one of the predefined time windows the agenda screens filter
// by.
type Bucket string

const (
	BucketToday Bucket = "today"
	BucketWeek  Bucket = "week"
	BucketMonth Bucket = "month"
)

// FilterByBucket keeps the events whose calendar day falls inside the
// requested window relative to now. The week runs Sunday-first, matching
// the client's getDay convention, and spans [now - weekday, +6d]
// inclusive. Input order is preserved; events with missing or unparseable
// dates never match. Past-event exclusion is a separate concern: combine
// with IsUpcoming so buckets that span backwards (this week's yesterday)
// drop past members while today's own events survive.
func FilterByBucket(events []models.Event, bucket Bucket, now time.Time) []models.Event {
	weekStart := truncateDay(now).AddDate(0, 0, -int(now.Weekday()))
	weekEnd := weekStart.AddDate(0, 0, 6)

	filtered := []models.Event{}
	for _, ev := range events {
		t, ok := parseEventDate(ev.Date)
		if !ok {
			continue
		}
		switch bucket {
		case BucketToday:
			if SameDay(t, now) {
				filtered = append(filtered, ev)
			}
		case BucketWeek:
			if InWeek(t, weekStart, weekEnd) {
				filtered = append(filtered, ev)
			}
		case BucketMonth:
			if SameMonth(t, now) {
				filtered = append(filtered, ev)
			}
		}
	}
	return filtered
}

// IsUpcoming reports whether the event's calendar day is today or later.
// Today's events always count as upcoming regardless of the hour.
func IsUpcoming(ev models.Event, now time.Time) bool {
	t, ok := parseEventDate(ev.Date)
	if !ok {
		return false
	}
	return !truncateDay(t).Before(truncateDay(now))
}

// Upcoming filters events to those IsUpcoming accepts, preserving order.
func Upcoming(events []models.Event, now time.Time) []models.Event {
	filtered := []models.Event{}
	for _, ev := range events {
		if IsUpcoming(ev, now) {
			filtered = append(filtered, ev)
		}
	}
	return filtered
}

// EmptyStateMessage returns the localized placeholder shown when a bucket
// has no events.
func EmptyStateMessage(bucket Bucket) string {
	switch bucket {
	case BucketToday:
		return "No hay eventos programados para hoy"
	case BucketWeek:
		return "No hay eventos programados para esta semana"
	case BucketMonth:
		return "No hay eventos programados para este mes"
	}
	return "No hay eventos disponibles"
}
