package agenda

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stamp builds a server timestamp whose local rendering sits exactly
// delta before now, compensating for the fixed UTC offset.
func stamp(now time.Time, delta time.Duration) string {
	return now.Add(-delta).Add(-UTCOffset).Format("2006-01-02T15:04:05Z")
}

func TestToLocal_EmptyInput(t *testing.T) {
	_, ok := ToLocal("")
	assert.False(t, ok)
}

func TestToLocal_InvalidInput(t *testing.T) {
	// Unparseable input is a value, not a fault: callers detect it with
	// IsZero and keep rendering.
	local, ok := ToLocal("not-a-date")
	assert.True(t, ok)
	assert.True(t, local.IsZero())
}

func TestToLocal_AppliesFixedOffset(t *testing.T) {
	local, ok := ToLocal("2025-06-15T19:00:00Z")
	require.True(t, ok)
	assert.Equal(t, 12, local.Hour())
	assert.Equal(t, 15, local.Day())
}

func TestToLocal_DateOnlyLayout(t *testing.T) {
	local, ok := ToLocal("2025-06-15")
	require.True(t, ok)
	assert.False(t, local.IsZero())
}

func TestRelativeTime_EmptyAndInvalid(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "", RelativeTime("", now))
	assert.Equal(t, "Fecha no disponible", RelativeTime("garbage", now))
}

func TestRelativeTime_Buckets(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		delta    time.Duration
		expected string
	}{
		{name: "just now", delta: 5 * time.Second, expected: "Hace unos segundos"},
		{name: "upper bound of seconds", delta: 59 * time.Second, expected: "Hace unos segundos"},
		{name: "exactly one minute", delta: 60 * time.Second, expected: "Hace 1 minuto"},
		{name: "plural minutes", delta: 2 * time.Minute, expected: "Hace 2 minutos"},
		{name: "upper bound of minutes", delta: 59*time.Minute + 59*time.Second, expected: "Hace 59 minutos"},
		{name: "exactly one hour", delta: time.Hour, expected: "Hace 1 hora"},
		{name: "plural hours", delta: 5 * time.Hour, expected: "Hace 5 horas"},
		{name: "upper bound of hours", delta: 23*time.Hour + 59*time.Minute, expected: "Hace 23 horas"},
		{name: "exactly one day", delta: 24 * time.Hour, expected: "Ayer"},
		{name: "three days", delta: 3 * 24 * time.Hour, expected: "Hace 3 días"},
		{name: "six days and change", delta: 6*24*time.Hour + 23*time.Hour, expected: "Hace 6 días"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RelativeTime(stamp(now, tt.delta), now))
		})
	}
}

func TestRelativeTime_AbsoluteAfterOneWeek(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "08/06/2025 12:00", RelativeTime(stamp(now, 7*24*time.Hour), now))
	assert.Equal(t, "05/06/2025 12:00", RelativeTime(stamp(now, 10*24*time.Hour), now))
}

func TestRelativeTime_FutureTimestampUsesAbsoluteDelta(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Hace 2 minutos", RelativeTime(stamp(now, -2*time.Minute), now))
}

func TestSameDay_IgnoresTimeOfDay(t *testing.T) {
	early := time.Date(2025, 6, 15, 0, 1, 0, 0, time.UTC)
	late := time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC)
	nextDay := time.Date(2025, 6, 16, 0, 0, 1, 0, time.UTC)

	assert.True(t, SameDay(early, late))
	assert.False(t, SameDay(late, nextDay))
}

func TestInWeek_InclusiveBounds(t *testing.T) {
	weekStart := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC) // Sunday
	weekEnd := time.Date(2025, 6, 21, 0, 0, 0, 0, time.UTC)   // Saturday

	assert.True(t, InWeek(time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC), weekStart, weekEnd))
	assert.True(t, InWeek(time.Date(2025, 6, 21, 0, 1, 0, 0, time.UTC), weekStart, weekEnd))
	assert.False(t, InWeek(time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC), weekStart, weekEnd))
	assert.False(t, InWeek(time.Date(2025, 6, 22, 0, 0, 0, 0, time.UTC), weekStart, weekEnd))
}

func TestSameMonth(t *testing.T) {
	ref := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.True(t, SameMonth(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), ref))
	assert.False(t, SameMonth(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), ref))
	assert.False(t, SameMonth(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), ref))
}

func TestFormatDate_LongSpanishForm(t *testing.T) {
	assert.Equal(t, "15 de junio de 2025", FormatDate("2025-06-15T10:00:00"))
	assert.Equal(t, "1 de enero de 2026", FormatDate("2026-01-01"))
	assert.Equal(t, "Fecha no disponible", FormatDate(""))
	assert.Equal(t, "Fecha no disponible", FormatDate("15/06/2025"))
}

func TestFormatDate_NormalizesUpstreamGlitch(t *testing.T) {
	assert.Equal(t, "15 de junio de 2025", FormatDate("2025-06-15T:10:00:00"))
}

func TestFormatHour(t *testing.T) {
	assert.Equal(t, "18:30", FormatHour("2025-06-15T18:30:00"))
	assert.Equal(t, "00:00", FormatHour("2025-06-15"))
	assert.Equal(t, "", FormatHour("garbage"))
}

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "2025-06-15T10:00:00", NormalizeDate("2025-06-15T:10:00:00"))
	assert.Equal(t, "2025-06-15T10:00:00", NormalizeDate("2025-06-15T10:00:00"))
	assert.Equal(t, "", NormalizeDate(""))
}
