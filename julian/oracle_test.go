package julian

import (
	"math"
)

// Independent forward conversions used to check FromCalendar. Integer
// division in these forms truncates toward zero, so they only hold for
// positive years.

// fliegelVanFlandern is the Gregorian day number from Fliegel and Van
// Flandern, Communications of the ACM 11(10), 1968
func fliegelVanFlandern(year, month, day, hour, minute int, second float64) float64 {
	k := (month - 14) / 12
	jdn := day - 32075 + 1461*(year+4800+k)/4 + 367*(month-2-k*12)/12 - 3*((year+4900+k)/100)/4
	return float64(jdn) + float64(hour-12)/24 + float64(minute)/1440 + second/86400
}

// meeus is the forward conversion from Meeus, Astronomical Algorithms,
// ch. 7. The base term already falls on midnight, so hours are added
// without a noon shift.
func meeus(year, month, day, hour, minute int, second float64) float64 {
	if month <= 2 {
		year--
		month += 12
	}

	a := math.Floor(float64(year) / 100)
	b := 2 - a + math.Floor(a/4)

	jd := math.Floor(365.25*float64(year+4716)) + math.Floor(30.6001*float64(month+1)) + float64(day) + b - 1524.5
	return jd + float64(hour)/24 + float64(minute)/1440 + second/86400
}

// julianCalendarDayNumber is the day number of a Julian calendar
// date, the calendar ToCalendar answers in before the reform
func julianCalendarDayNumber(year, month, day int) int {
	return 367*year - 7*(year+5001+(month-9)/7)/4 + 275*month/9 + day + 1729777
}
