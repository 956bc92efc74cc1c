package agenda

import (
	"fmt"
	"strings"
	"time"
)

// UTCOffset is the fixed shift applied to every server timestamp. The
// upstream system approximated the campus timezone with a constant seven
// hour offset instead of tzdata rules; literal-output tests depend on it,
// so it stays a constant.
const UTCOffset = -7 * time.Hour

// Day boundaries for whole-day bucketing.
const day = 24 * time.Hour

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ToLocal parses a server timestamp and applies UTCOffset. Empty input
// returns ok == false (the "no value" case). Unparseable input returns a
// zero time with ok == true: a valid-shaped but unusable value that
// callers detect with IsZero, mirroring how the client treated invalid
// dates as renderable rather than as faults.
func ToLocal(ts string) (time.Time, bool) {
	if ts == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return t.Add(UTCOffset), true
		}
	}
	return time.Time{}, true
}

// RelativeTime renders a human elapsed-time phrase for ts relative to
// now: "Hace unos segundos", "Hace N minutos", "Ayer" and so on, falling
// back to an absolute DD/MM/YYYY HH:mm string after a week. Empty input
// yields "", unparseable input the degraded DefaultDate literal.
func RelativeTime(ts string, now time.Time) string {
	local, ok := ToLocal(ts)
	if !ok {
		return ""
	}
	if local.IsZero() {
		return DefaultDate
	}

	delta := now.Sub(local)
	if delta < 0 {
		delta = -delta
	}

	if delta < time.Minute {
		return "Hace unos segundos"
	}
	if delta < time.Hour {
		minutes := int(delta.Minutes())
		if minutes == 1 {
			return "Hace 1 minuto"
		}
		return fmt.Sprintf("Hace %d minutos", minutes)
	}
	if delta < day {
		hours := int(delta.Hours())
		if hours == 1 {
			return "Hace 1 hora"
		}
		return fmt.Sprintf("Hace %d horas", hours)
	}

	// Whole days by straight duration division, no calendar snapping.
	// The zero-day branch is unreachable after the <24h check above but
	// is kept in this order to match the upstream branch layout.
	days := int(delta / day)
	switch {
	case days == 0:
		return "Hoy"
	case days == 1:
		return "Ayer"
	case days < 7:
		return fmt.Sprintf("Hace %d días", days)
	}

	return local.Format("02/01/2006 15:04")
}

// truncateDay zeroes the time-of-day so comparisons use calendar fields
// only: "today 23:59" and "today 00:01" are the same day.
func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether t and ref fall on the same calendar day.
func SameDay(t, ref time.Time) bool {
	return t.Year() == ref.Year() && t.Month() == ref.Month() && t.Day() == ref.Day()
}

// InWeek reports whether t's calendar day falls within [weekStart,
// weekEnd] inclusive.
func InWeek(t, weekStart, weekEnd time.Time) bool {
	d := truncateDay(t)
	return !d.Before(truncateDay(weekStart)) && !d.After(truncateDay(weekEnd))
}

// SameMonth reports whether t and ref share calendar month and year.
func SameMonth(t, ref time.Time) bool {
	return t.Year() == ref.Year() && t.Month() == ref.Month()
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// FormatDate renders an event timestamp as a long es-ES calendar date,
// e.g. "15 de junio de 2025". Unparseable input degrades to DefaultDate.
func FormatDate(ts string) string {
	t, ok := parseEventDate(ts)
	if !ok {
		return DefaultDate
	}
	return fmt.Sprintf("%d de %s de %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
}

// FormatHour renders the 24-hour HH:mm component of an event timestamp,
// or "" when the timestamp cannot be parsed.
func FormatHour(ts string) string {
	t, ok := parseEventDate(ts)
	if !ok {
		return ""
	}
	return t.Format("15:04")
}

// NormalizeDate rewrites the malformed "T:" separator produced by a known
// upstream glitch to a plain "T" so the timestamp parses.
func NormalizeDate(ts string) string {
	return strings.Replace(ts, "T:", "T", 1)
}

// parseEventDate parses an event date field after glitch normalization.
// Unlike ToLocal it keeps the parsed calendar fields as-is: bucket
// membership and display formatting read the date the way it was written.
func parseEventDate(ts string) (time.Time, bool) {
	if ts == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, NormalizeDate(ts)); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
