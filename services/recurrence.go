package services

import (
	"log"
	"time"
)

// Single/double letter weekday abbreviations used by recurrence requests.
var weekdayAbbrev = map[time.Weekday]string{
	time.Sunday:    "Su",
	time.Monday:    "M",
	time.Tuesday:   "T",
	time.Wednesday: "W",
	time.Thursday:  "Th",
	time.Friday:    "F",
	time.Saturday:  "S",
}

// WeekdayAbbrev returns the abbreviation for a weekday ("Su".."S").
func WeekdayAbbrev(d time.Weekday) string {
	return weekdayAbbrev[d]
}

/*
* Expand a recurrence request into concrete calendar dates
* Walks every day from start to end inclusive and keeps the ones whose
* weekday abbreviation is in the requested set
* An empty weekday set or start > end yields an empty sequence
*
* repeatEvery and repeatUnit are accepted but not applied: the walk always
* advances one calendar day and filters by weekday membership only. Known
* gap kept for parity with the booking frontend; needs product clarification
* before interval or month based repetition is wired in.
 */
func ExpandRecurrence(startDate, endDate string, weekdays []string, repeatEvery int, repeatUnit string) ([]string, error) {
	if len(weekdays) == 0 {
		return []string{}, nil
	}
	start, err := ParseDate(startDate)
	if err != nil {
		log.Println("Error parsing recurrence start date: ", err)
		return nil, err
	}
	end, err := ParseDate(endDate)
	if err != nil {
		log.Println("Error parsing recurrence end date: ", err)
		return nil, err
	}
	wanted := make(map[string]bool, len(weekdays))
	for _, w := range weekdays {
		wanted[w] = true
	}
	dates := []string{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if wanted[WeekdayAbbrev(d.Weekday())] {
			dates = append(dates, d.Format(DateLayout))
		}
	}
	return dates, nil
}
