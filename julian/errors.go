package julian

import (
	"fmt"
)

// DomainError is returned when a Julian day cannot be reconstructed
// into a calendar date. It signals NaN, infinite, or otherwise
// implausible input rather than a recoverable condition.
type DomainError struct {
	JulianDay float64
	Index     float64 // month index, valid in [0, 15]
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("unacceptable month-index during calendar reconstruction: index %v, julian day %v", e.Index, e.JulianDay)
}
