package almanac

import (
	"fmt"

	"github.com/subtlepseudonym/almanac/deltat"
	"github.com/subtlepseudonym/almanac/julian"
)

// Calendar selects how Julian days before the 1582 reform are turned
// back into dates
type Calendar string

const (
	// CalendarCutover answers in the Julian calendar before the reform
	CalendarCutover Calendar = "cutover"
	// CalendarProleptic answers in the Gregorian calendar throughout,
	// making it the exact inverse of JulianDay
	CalendarProleptic Calendar = "proleptic"
)

func (c Calendar) Valid() bool {
	switch c {
	case CalendarCutover, CalendarProleptic:
		return true
	}
	return false
}

// Almanac converts between civil dates and astronomical time scales
// using a single delta T table and calendar policy
type Almanac struct {
	calendar  Calendar
	estimator *deltat.Estimator
}

// New returns an Almanac answering delta T from table. A nil table
// uses the compiled in observations and an empty calendar defaults to
// CalendarCutover.
func New(table *deltat.Table, calendar Calendar) (*Almanac, error) {
	if calendar == "" {
		calendar = CalendarCutover
	}
	if !calendar.Valid() {
		return nil, fmt.Errorf("unknown calendar %q", calendar)
	}

	if table == nil {
		table = deltat.Default()
	}

	return &Almanac{
		calendar:  calendar,
		estimator: deltat.NewEstimator(table),
	}, nil
}

func (a *Almanac) Calendar() Calendar {
	return a.calendar
}

// JulianDay returns the UT Julian day for d
func (a *Almanac) JulianDay(d julian.Date) float64 {
	return d.JulianDay()
}

// Date reconstructs the civil date for a Julian day according to the
// almanac's calendar
func (a *Almanac) Date(jd float64) (julian.Date, error) {
	if a.calendar == CalendarProleptic {
		return julian.ToProlepticCalendar(jd)
	}
	return julian.ToCalendar(jd)
}

// EpochSeconds returns seconds elapsed between J2000 and d
func (a *Almanac) EpochSeconds(d julian.Date) float64 {
	return julian.ToEpochSeconds(a.JulianDay(d))
}

func (a *Almanac) DateFromEpochSeconds(seconds float64) (julian.Date, error) {
	return a.Date(julian.FromEpochSeconds(seconds))
}

// DeltaT returns TT - UT in seconds for year
func (a *Almanac) DeltaT(year int) float64 {
	return a.estimator.Estimate(year)
}

// TerrestrialJulianDay returns the Julian day for d on the Terrestrial
// Time scale, treating d as Universal Time
func (a *Almanac) TerrestrialJulianDay(d julian.Date) float64 {
	return a.JulianDay(d) + a.DeltaT(d.Year)/julian.SecondsPerDay
}
