package domain

import (
	"fmt"
	"math"
	"time"
)

// DateRange is a half-open interval [Start, End).
type DateRange struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

func (r DateRange) Validate(now time.Time) error {
	if !r.Start.Before(r.End) {
		return fmt.Errorf("%w: start date must be before end date", ErrValidation)
	}
	if r.Start.Before(now) {
		return fmt.Errorf("%w: start date cannot be in the past", ErrValidation)
	}
	return nil
}

// Overlaps reports whether two half-open ranges share at least one instant.
// Touching endpoints do not overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.Start.Before(other.End) && r.End.After(other.Start)
}

// Nights is the billable duration in days, rounded up. A partial day is
// billed as a full day; minimum one night.
func (r DateRange) Nights() int {
	nights := int(math.Ceil(r.End.Sub(r.Start).Hours() / 24))
	if nights <= 0 {
		return 1
	}
	return nights
}

// PriceFor computes the total price for this range at the given daily rate.
func (r DateRange) PriceFor(dailyRate float64) float64 {
	return float64(r.Nights()) * dailyRate
}
