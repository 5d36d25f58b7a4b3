package julian

import (
	"math"
)

const (
	J2000            = 2451545.0 // 12:00 UT, 1 January 2000
	GregorianCutover = 2299161   // day number of 15 October 1582
	SecondsPerDay    = 86400
	DaysPerCentury   = 36525
)

// Date is a civil timestamp in the proleptic Gregorian calendar.
// Years use astronomical numbering, so 1 BC is year 0.
//
// Fields are not validated. Out of range values produce a numerically
// defined, if meaningless, Julian day.
type Date struct {
	Year   int     `json:"year"`
	Month  int     `json:"month"`
	Day    int     `json:"day"`
	Hour   int     `json:"hour"`
	Minute int     `json:"minute"`
	Second float64 `json:"second"`
}

// JulianDay is shorthand for FromCalendar over the fields of d
func (d Date) JulianDay() float64 {
	return FromCalendar(d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second)
}

// FromCalendar returns the fractional Julian day for a civil
// timestamp.
//
// The day number is computed from years and months counted since
// 1 March 4801 BC, which puts the leap day at the end of the year.
// That number names the day beginning at noon, so times before noon
// are moved back half a day.
// https://en.wikipedia.org/wiki/Julian_day#Converting_Gregorian_calendar_date_to_Julian_Day_Number
func FromCalendar(year, month, day, hour, minute int, second float64) float64 {
	a := floorDiv(14-month, 12)
	y := year + 4800 - a
	m := month + 12*a - 3

	jdn := float64(day + floorDiv(153*m+2, 5) + 365*y + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400) - 32045)
	if hour < 12 {
		jdn -= 0.5
	} else {
		hour -= 12
	}

	return jdn + (float64(hour*3600+minute*60)+second)/SecondsPerDay
}

// ToCalendar reconstructs the civil timestamp for a Julian day using
// the algorithm from Meeus, Astronomical Algorithms, ch. 7.
//
// Days before GregorianCutover are reconstructed in the Julian
// calendar, which does not match the proleptic Gregorian dates
// FromCalendar accepts. Use ToProlepticCalendar for an exact inverse.
func ToCalendar(jd float64) (Date, error) {
	return reconstruct(jd, false)
}

// ToProlepticCalendar is ToCalendar with the Gregorian correction
// applied to every day, including those before the 1582 reform and
// before Julian day zero
func ToProlepticCalendar(jd float64) (Date, error) {
	return reconstruct(jd, true)
}

func reconstruct(jd float64, proleptic bool) (Date, error) {
	// The published algorithm truncates, which only holds for positive
	// Julian days. The proleptic form floors so it extends before day
	// zero.
	round := math.Trunc
	if proleptic {
		round = math.Floor
	}

	z := round(jd + 0.5)
	f := jd + 0.5 - z

	a := z
	if proleptic || z >= GregorianCutover {
		alpha := round((z - 1867216.25) / 36524.25)
		a = z + 1 + alpha - round(alpha/4)
	}

	b := a + 1524
	c := round((b - 122.1) / 365.25)
	d := round(365.25 * c)
	e := round((b - d) / 30.6001)
	if math.IsNaN(e) || e < 0 || e > 15 {
		return Date{}, &DomainError{JulianDay: jd, Index: e}
	}

	month := int(e) - 1
	if e >= 14 {
		month = int(e) - 13
	}

	year := int(c) - 4715
	if month > 2 {
		year = int(c) - 4716
	}

	day, dayFrac := math.Modf(b - d - round(30.6001*e) + f)
	hour, hourFrac := math.Modf(dayFrac * 24)
	minute, minuteFrac := math.Modf(hourFrac * 60)

	// Seconds are rounded up rather than to nearest. Downstream
	// consumers expect this, even though it turns 59.0000001 into 60.
	second := math.Ceil(minuteFrac * 60)

	return Date{
		Year:   year,
		Month:  month,
		Day:    int(day),
		Hour:   int(hour),
		Minute: int(minute),
		Second: second,
	}, nil
}

// floorDiv is integer division rounding toward negative infinity
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
