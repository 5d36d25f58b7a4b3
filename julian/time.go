package julian

import (
	"math"
	"time"

	"github.com/nathan-osman/go-sunrise"
)

const (
	UnixEpoch = 2440587.5 // 00:00 UT, 1 January 1970
)

// FromTime returns the Julian day for t, to the nanosecond.
//
// The time package smears leap seconds rather than counting them, so
// the result is a UT Julian day with no leap second or terrestrial
// time adjustment.
func FromTime(t time.Time) float64 {
	// sunrise only counts whole seconds
	return sunrise.TimeToJulianDay(t) + float64(t.Nanosecond())/float64(time.Second)/SecondsPerDay
}

// ToTime is the inverse of FromTime, rounded to the nearest
// nanosecond and located in UTC
func ToTime(jd float64) time.Time {
	_, frac := math.Modf((jd - UnixEpoch) * SecondsPerDay)
	return sunrise.JulianDayToTime(jd).Add(time.Duration(math.Round(frac * float64(time.Second)))).UTC()
}
