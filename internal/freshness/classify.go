// Package freshness turns a "days until expiry" estimate into display
// information: a five-step band for the freshness meter and the
// expiring-soon flag used to split inventory listings.
package freshness

// Band is an ordinal freshness category.
type Band int

const (
	Bad Band = iota
	Poor
	Average
	Good
	Excellent
)

// Inclusive upper bounds, in days, for the first four bands.
// Anything above GoodMaxDays is Excellent.
const (
	BadMaxDays     = 2
	PoorMaxDays    = 4
	AverageMaxDays = 6
	GoodMaxDays    = 8
)

var bandNames = [...]string{"Bad", "Poor", "Average", "Good", "Excellent"}

// Positions on the five-segment meter. Not proportional to days.
var bandPositions = [...]float64{0.0, 0.25, 0.5, 0.75, 1.0}

func (b Band) String() string {
	if b < Bad || b > Excellent {
		return "Unknown"
	}
	return bandNames[b]
}

// Position returns the meter position of the band in [0, 1].
func (b Band) Position() float64 {
	if b < Bad || b > Excellent {
		return 0
	}
	return bandPositions[b]
}

// Rating is the classifier output.
type Rating struct {
	Band     Band    `json:"band"`
	Position float64 `json:"position"`
}

// Classify maps days until expiry to a Rating. It is total: negative values
// (already expired) are Bad.
func Classify(days int) Rating {
	var b Band
	switch {
	case days <= BadMaxDays:
		b = Bad
	case days <= PoorMaxDays:
		b = Poor
	case days <= AverageMaxDays:
		b = Average
	case days <= GoodMaxDays:
		b = Good
	default:
		b = Excellent
	}
	return Rating{Band: b, Position: b.Position()}
}
