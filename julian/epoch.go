package julian

// ToEpochSeconds returns the signed number of seconds between the
// Julian day and J2000
func ToEpochSeconds(jd float64) float64 {
	return (jd - J2000) * SecondsPerDay
}

// FromEpochSeconds returns the Julian day lying the given number of
// seconds after J2000
func FromEpochSeconds(seconds float64) float64 {
	return J2000 + seconds/SecondsPerDay
}

// CenturiesSinceJ2000 returns Julian centuries elapsed since J2000,
// commonly written T in precession and obliquity formulas.
//
// https://radixpro.com/a4a-start/factor-t-and-delta-t/
func CenturiesSinceJ2000(seconds float64) float64 {
	return (FromEpochSeconds(seconds) - J2000) / DaysPerCentury
}

func DateToEpochSeconds(d Date) float64 {
	return ToEpochSeconds(d.JulianDay())
}

// EpochSecondsToDate reconstructs the civil timestamp for an offset
// from J2000. Reconstruction follows ToCalendar, including its
// Julian calendar handling before 1582.
func EpochSecondsToDate(seconds float64) (Date, error) {
	return ToCalendar(FromEpochSeconds(seconds))
}
