package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdayAbbrev(t *testing.T) {
	assert.Equal(t, "Su", WeekdayAbbrev(time.Sunday))
	assert.Equal(t, "M", WeekdayAbbrev(time.Monday))
	assert.Equal(t, "T", WeekdayAbbrev(time.Tuesday))
	assert.Equal(t, "W", WeekdayAbbrev(time.Wednesday))
	assert.Equal(t, "Th", WeekdayAbbrev(time.Thursday))
	assert.Equal(t, "F", WeekdayAbbrev(time.Friday))
	assert.Equal(t, "S", WeekdayAbbrev(time.Saturday))
}

func TestExpandRecurrenceEmptyWeekdaySet(t *testing.T) {
	dates, err := ExpandRecurrence("2026-01-05", "2026-02-05", nil, 1, "Week")
	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestExpandRecurrenceStartAfterEnd(t *testing.T) {
	dates, err := ExpandRecurrence("2026-02-05", "2026-01-05", []string{"M"}, 1, "Week")
	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestExpandRecurrenceSingleDayRoundTrip(t *testing.T) {
	// 2026-01-05 is a Monday
	dates, err := ExpandRecurrence("2026-01-05", "2026-01-05", []string{"M"}, 1, "Week")
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-01-05"}, dates)

	dates, err = ExpandRecurrence("2026-01-05", "2026-01-05", []string{"T", "Th"}, 1, "Week")
	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestExpandRecurrenceWeekdayFilter(t *testing.T) {
	// two full weeks starting Monday 2026-01-05
	dates, err := ExpandRecurrence("2026-01-05", "2026-01-18", []string{"M", "W", "F"}, 1, "Week")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"2026-01-05", "2026-01-07", "2026-01-09",
		"2026-01-12", "2026-01-14", "2026-01-16",
	}, dates)
}

// The repeat interval is accepted but the walk is still day-by-day with
// weekday filtering only; every matching week appears.
func TestExpandRecurrenceIntervalNotApplied(t *testing.T) {
	every2, err := ExpandRecurrence("2026-01-05", "2026-01-18", []string{"M"}, 2, "Week")
	require.NoError(t, err)
	every1, err := ExpandRecurrence("2026-01-05", "2026-01-18", []string{"M"}, 1, "Week")
	require.NoError(t, err)
	assert.Equal(t, every1, every2)
	assert.Equal(t, []string{"2026-01-05", "2026-01-12"}, every2)
}

func TestExpandRecurrenceThVsT(t *testing.T) {
	// Th must not match Tuesdays and T must not match Thursdays
	dates, err := ExpandRecurrence("2026-01-05", "2026-01-11", []string{"Th"}, 1, "Week")
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-01-08"}, dates)

	dates, err = ExpandRecurrence("2026-01-05", "2026-01-11", []string{"T"}, 1, "Week")
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-01-06"}, dates)
}

func TestExpandRecurrenceBadDates(t *testing.T) {
	_, err := ExpandRecurrence("05-01-2026", "2026-01-18", []string{"M"}, 1, "Week")
	assert.Error(t, err)

	_, err = ExpandRecurrence("2026-01-05", "someday", []string{"M"}, 1, "Week")
	assert.Error(t, err)
}

func TestExpandRecurrenceOrdered(t *testing.T) {
	dates, err := ExpandRecurrence("2026-01-01", "2026-03-31", []string{"Su", "S"}, 1, "Week")
	require.NoError(t, err)
	for i := 1; i < len(dates); i++ {
		assert.Less(t, dates[i-1], dates[i])
	}
}
