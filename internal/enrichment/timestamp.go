package enrichment

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	timeOfDayLayout = "15:04:05"

	// Synthesized clock readings fall inside working hours.
	workdayFirstHour = 8
	workdayLastHour  = 18
)

var workdayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// TimestampRepair is the display form of a record's date after repair
type TimestampRepair struct {
	DayName     string
	TimeOfDay   string
	WorkingDays int

	DaySynthesized  bool
	TimeSynthesized bool
}

// RepairTimestamp derives day name, time of day and elapsed days from date.
//
// A nil date gets a random weekday, a random working-hours time and zero
// working days. A date whose clock reads exactly 00:00:00 is treated as
// date-only: the weekday is kept and only the time is synthesized.
func RepairTimestamp(date *time.Time, now time.Time, rng *rand.Rand) TimestampRepair {
	if date == nil {
		return TimestampRepair{
			DayName:         randomWeekday(rng),
			TimeOfDay:       randomTimeOfDay(rng),
			WorkingDays:     0,
			DaySynthesized:  true,
			TimeSynthesized: true,
		}
	}

	repair := TimestampRepair{
		DayName:     date.Weekday().String(),
		WorkingDays: WholeDaysBetween(*date, now),
	}
	if isMidnight(*date) {
		repair.TimeOfDay = randomTimeOfDay(rng)
		repair.TimeSynthesized = true
	} else {
		repair.TimeOfDay = date.Format(timeOfDayLayout)
	}
	return repair
}

// WholeDaysBetween returns the number of whole days from date to now,
// truncated toward zero. Dates after now yield negative values. Both are
// compared as wall-clock readings in date's zone, so a DST change in
// between does not shift the count.
func WholeDaysBetween(date, now time.Time) int {
	return int(wallClock(now.In(date.Location())).Sub(wallClock(date)) / (24 * time.Hour))
}

func wallClock(t time.Time) time.Time {
	y, m, d := t.Date()
	h, mi, s := t.Clock()
	return time.Date(y, m, d, h, mi, s, t.Nanosecond(), time.UTC)
}

func isMidnight(t time.Time) bool {
	h, m, s := t.Clock()
	return h == 0 && m == 0 && s == 0 && t.Nanosecond() == 0
}

func randomWeekday(rng *rand.Rand) string {
	return workdayNames[rng.Intn(len(workdayNames))]
}

func randomTimeOfDay(rng *rand.Rand) string {
	hour := workdayFirstHour + rng.Intn(workdayLastHour-workdayFirstHour+1)
	minute := rng.Intn(60)
	second := rng.Intn(60)
	return fmt.Sprintf("%02d:%02d:%02d", hour, minute, second)
}
