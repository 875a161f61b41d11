package quoting

import (
	"math"
	"time"
)

// The 2 PM cutoff: a pickup after 14:00 does not consume that calendar day,
// a dropoff after 14:00 consumes an extra one. Each adjusts the raw day
// count by half a day before rounding up.
const cutoffHour = 14

// BillableDays converts a pickup/dropoff date-time pair into the whole number
// of days charged for the hire. Dates are yyyy-mm-dd, times HH:MM 24-hour.
// Returns 1 if either date is absent or unparseable. Pure: no side effects,
// identical inputs always yield the identical result.
//
// A dropoff earlier than the pickup is not rejected here; the negative raw
// value is clamped by the minimum-1 floor. Callers validate date order.
func BillableDays(pickupDate, pickupTime, dropoffDate, dropoffTime string) int32 {
	pickup, ok := combineDateTime(pickupDate, pickupTime)
	if !ok {
		return 1
	}
	dropoff, ok := combineDateTime(dropoffDate, dropoffTime)
	if !ok {
		return 1
	}

	rawDays := dropoff.Sub(pickup).Hours() / 24

	if pickup.Hour() >= cutoffHour {
		rawDays -= 0.5
	}
	if dropoff.Hour() >= cutoffHour {
		rawDays += 0.5
	}

	days := int32(math.Ceil(rawDays))
	if days < 1 {
		days = 1
	}
	return days
}

// DateOrderValid reports whether the dropoff instant is at or after the
// pickup instant. Vacuously true while either date is unset. The reducer
// never enforces this; API callers do, before applying the event.
func DateOrderValid(pickupDate, pickupTime, dropoffDate, dropoffTime string) bool {
	pickup, ok := combineDateTime(pickupDate, pickupTime)
	if !ok {
		return true
	}
	dropoff, ok := combineDateTime(dropoffDate, dropoffTime)
	if !ok {
		return true
	}
	return !dropoff.Before(pickup)
}

func combineDateTime(date, clock string) (time.Time, bool) {
	if date == "" {
		return time.Time{}, false
	}
	if clock == "" {
		clock = "00:00"
	}
	t, err := time.Parse("2006-01-02 15:04", date+" "+clock)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
