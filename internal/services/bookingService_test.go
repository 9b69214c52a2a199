package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonthYear(t *testing.T) {
	from, to, err := ParseMonthYear("10-2025")
	require.NoError(t, err)
	assert.Equal(t, time.October, from.Month())
	assert.Equal(t, 2025, from.Year())
	assert.Equal(t, 1, from.Day())
	assert.Equal(t, time.October, to.Month())
	assert.Equal(t, 31, to.Day())
	assert.True(t, to.After(from))

	// February of a leap year.
	_, to, err = ParseMonthYear("02-2028")
	require.NoError(t, err)
	assert.Equal(t, 29, to.Day())
}

func TestParseMonthYearRejectsBadInput(t *testing.T) {
	for _, in := range []string{"", "13-2025", "0-2025", "10", "oct-2025", "10-abcd", "10-2025-01"} {
		_, _, err := ParseMonthYear(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestCurrentWeekMondayToSunday(t *testing.T) {
	// A Friday.
	now := time.Date(2026, time.August, 28, 15, 4, 5, 0, time.UTC)
	monday, sunday := currentWeek(now)

	assert.Equal(t, time.Monday, monday.Weekday())
	assert.Equal(t, time.Sunday, sunday.Weekday())
	assert.Equal(t, 24, monday.Day())
	assert.Equal(t, 30, sunday.Day())
	assert.Equal(t, 0, monday.Hour())
	assert.Equal(t, 23, sunday.Hour())

	// Sunday belongs to the week that started the previous Monday.
	sun := time.Date(2026, time.August, 30, 8, 0, 0, 0, time.UTC)
	monday, sunday = currentWeek(sun)
	assert.Equal(t, 24, monday.Day())
	assert.Equal(t, 30, sunday.Day())

	// A Monday starts its own week.
	mon := time.Date(2026, time.August, 24, 0, 30, 0, 0, time.UTC)
	monday, _ = currentWeek(mon)
	assert.Equal(t, 24, monday.Day())
}
