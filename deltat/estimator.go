// Package deltat estimates delta T, the difference between Terrestrial
// Time and Universal Time, in seconds.
//
// Years covered by a table of observations are answered from the table.
// Every other year falls back to a piecewise polynomial model.
package deltat

// Estimator answers delta T from a specific table
type Estimator struct {
	table *Table
}

// NewEstimator returns an Estimator over table. A nil table uses the
// compiled in observations.
func NewEstimator(table *Table) *Estimator {
	if table == nil {
		table = defaultTable
	}
	return &Estimator{table: table}
}

// Estimate returns delta T in seconds for the given year. Years are
// whole; there is no interpolation within a year.
func (e *Estimator) Estimate(year int) float64 {
	if seconds, ok := e.table.Lookup(year); ok {
		return seconds
	}
	return Polynomial(year)
}

// Table returns the table backing the estimator
func (e *Estimator) Table() *Table {
	return e.table
}

var defaultEstimator = NewEstimator(defaultTable)

// Estimate returns delta T in seconds using the compiled in table
func Estimate(year int) float64 {
	return defaultEstimator.Estimate(year)
}
