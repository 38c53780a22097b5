package services

import (
	"fmt"
	"strings"
	"time"

	"CareDesk360/models"
)

// Canonical storage layout for calendar dates. ISO dates compare
// lexicographically, which the leave range filters rely on.
const DateLayout = "2006-01-02"

const defaultSlotDuration = 30

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

/*
* Parse a clock time into minutes since midnight
* Accepts 24-hour "HH:mm" and 12-hour "h:mm AM/PM" forms
 */
func ParseClockTime(s string) (int, error) {
	s = strings.TrimSpace(s)
	layouts := []string{"15:04", "3:04 PM", "3:04PM"}
	for _, layout := range layouts {
		t, err := time.Parse(layout, strings.ToUpper(s))
		if err == nil {
			return t.Hour()*60 + t.Minute(), nil
		}
	}
	return 0, fmt.Errorf("unrecognized clock time %q", s)
}

// FormatClockTime renders minutes since midnight as "HH:mm".
func FormatClockTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

/*
* Generate the bookable slots for a single day window
* Malformed times or start >= end degrade to no slots
* A missing or non-positive duration falls back to 30 minutes
 */
func SlotsForDay(day models.DaySchedule) []models.Slot {
	if !day.Available {
		return nil
	}
	duration := day.SlotDuration
	if duration <= 0 {
		duration = defaultSlotDuration
	}
	start, err := ParseClockTime(day.StartTime)
	if err != nil {
		return nil
	}
	end, err := ParseClockTime(day.EndTime)
	if err != nil {
		return nil
	}
	if start >= end {
		return nil
	}
	var slots []models.Slot
	for cur := start; cur+duration <= end; cur += duration {
		slots = append(slots, models.Slot{
			Start:        FormatClockTime(cur),
			End:          FormatClockTime(cur + duration),
			StartMinutes: cur,
			EndMinutes:   cur + duration,
		})
	}
	return slots
}

/*
* Look up the weekday entry of the schedule for the target date
* Delegate to SlotsForDay
* Recomputed fresh on every call,nothing is cached
 */
func SlotsForDate(schedule models.DoctorSchedule, date time.Time) []models.Slot {
	day, ok := schedule.Days[strings.ToLower(date.Weekday().String())]
	if !ok {
		return nil
	}
	return SlotsForDay(day)
}
