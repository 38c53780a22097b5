package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CareDesk360/models"
)

func mondaySchedule(day models.DaySchedule) models.DoctorSchedule {
	return models.DoctorSchedule{
		DoctorID: "D0001",
		Days:     map[string]models.DaySchedule{"monday": day},
	}
}

// 2026-01-05 is a Monday.
var monday = time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

func TestParseClockTime(t *testing.T) {
	cases := map[string]int{
		"09:00":    9 * 60,
		"9:00":     9 * 60,
		"17:30":    17*60 + 30,
		"9:00 AM":  9 * 60,
		"09:30 AM": 9*60 + 30,
		"12:00 PM": 12 * 60,
		"12:30 AM": 30,
		"5:15 pm":  17*60 + 15,
		"5:15PM":   17*60 + 15,
	}
	for input, want := range cases {
		got, err := ParseClockTime(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	for _, bad := range []string{"", "banana", "25:00", "9.00", "13:00 PM"} {
		_, err := ParseClockTime(bad)
		assert.Error(t, err, bad)
	}
}

func TestSlotsForDayTwoSlots(t *testing.T) {
	day := models.DaySchedule{Available: true, StartTime: "09:00", EndTime: "10:00", SlotDuration: 30}
	slots := SlotsForDay(day)
	require.Len(t, slots, 2)
	assert.Equal(t, "09:00", slots[0].Start)
	assert.Equal(t, "09:30", slots[0].End)
	assert.Equal(t, "09:30", slots[1].Start)
	assert.Equal(t, "10:00", slots[1].End)
}

func TestSlotsForDayUnavailable(t *testing.T) {
	day := models.DaySchedule{Available: false, StartTime: "09:00", EndTime: "17:00", SlotDuration: 30}
	assert.Empty(t, SlotsForDay(day))
}

func TestSlotsForDayCountContiguity(t *testing.T) {
	day := models.DaySchedule{Available: true, StartTime: "08:00", EndTime: "12:30", SlotDuration: 45}
	slots := SlotsForDay(day)
	// floor((12:30-08:00)/45) = floor(270/45) = 6
	require.Len(t, slots, 6)
	for i, slot := range slots {
		assert.Equal(t, 45, slot.EndMinutes-slot.StartMinutes)
		if i > 0 {
			assert.Equal(t, slots[i-1].EndMinutes, slot.StartMinutes)
		}
	}
	assert.LessOrEqual(t, slots[len(slots)-1].EndMinutes, 12*60+30)
}

func TestSlotsForDayTwelveHourTimes(t *testing.T) {
	day := models.DaySchedule{Available: true, StartTime: "9:00 AM", EndTime: "1:00 PM", SlotDuration: 60}
	slots := SlotsForDay(day)
	require.Len(t, slots, 4)
	assert.Equal(t, "09:00", slots[0].Start)
	assert.Equal(t, "13:00", slots[3].End)
}

func TestSlotsForDayMalformedTimes(t *testing.T) {
	day := models.DaySchedule{Available: true, StartTime: "whenever", EndTime: "10:00", SlotDuration: 30}
	assert.Empty(t, SlotsForDay(day))

	day = models.DaySchedule{Available: true, StartTime: "09:00", EndTime: "soon", SlotDuration: 30}
	assert.Empty(t, SlotsForDay(day))
}

func TestSlotsForDayStartNotBeforeEnd(t *testing.T) {
	day := models.DaySchedule{Available: true, StartTime: "10:00", EndTime: "10:00", SlotDuration: 30}
	assert.Empty(t, SlotsForDay(day))

	day = models.DaySchedule{Available: true, StartTime: "11:00", EndTime: "10:00", SlotDuration: 30}
	assert.Empty(t, SlotsForDay(day))
}

func TestSlotsForDayDurationDefault(t *testing.T) {
	day := models.DaySchedule{Available: true, StartTime: "09:00", EndTime: "10:00", SlotDuration: 0}
	slots := SlotsForDay(day)
	require.Len(t, slots, 2)
	assert.Equal(t, 30, slots[0].EndMinutes-slots[0].StartMinutes)

	day.SlotDuration = -15
	assert.Len(t, SlotsForDay(day), 2)
}

func TestSlotsForDateWeekdayLookup(t *testing.T) {
	schedule := mondaySchedule(models.DaySchedule{Available: true, StartTime: "09:00", EndTime: "10:00", SlotDuration: 30})
	assert.Len(t, SlotsForDate(schedule, monday), 2)

	tuesday := monday.AddDate(0, 0, 1)
	assert.Empty(t, SlotsForDate(schedule, tuesday))
}

func TestSlotsForDateUnavailableDay(t *testing.T) {
	schedule := mondaySchedule(models.DaySchedule{Available: false, StartTime: "09:00", EndTime: "17:00", SlotDuration: 15})
	assert.Empty(t, SlotsForDate(schedule, monday))
}
