package rdp

import (
	"math"

	"github.com/lintang-b-s/rdp-simplifier/pkg/datastructure"
	"github.com/pkg/errors"
)

// MaxDeviation returns the largest perpendicular distance between a discarded point and
// the chord of the two retained points enclosing it.
func MaxDeviation(points []datastructure.Point, retained []int) (float64, error) {
	if err := ValidateRetained(len(points), retained); err != nil {
		return 0, err
	}

	var maxDistanceSquared float64
	for k := 1; k < len(retained); k++ {
		d, _ := FindMostDivergentPoint(points, retained[k-1], retained[k])
		maxDistanceSquared = math.Max(maxDistanceSquared, d)
	}
	return math.Sqrt(maxDistanceSquared), nil
}

// ValidateRetained checks that retained is a strictly increasing index sequence running
// from the first to the last of n points.
func ValidateRetained(n int, retained []int) error {
	if n < 2 {
		return errors.Wrapf(ErrInvalidArgument, "not enough points: %d", n)
	}
	if len(retained) < 2 || retained[0] != 0 || retained[len(retained)-1] != n-1 {
		return errors.Wrapf(ErrInvalidArgument, "retained indices must start at 0 and end at %d", n-1)
	}
	for k := 1; k < len(retained); k++ {
		if retained[k] <= retained[k-1] {
			return errors.Wrapf(ErrInvalidArgument, "retained indices not strictly increasing at position %d", k)
		}
	}
	return nil
}
