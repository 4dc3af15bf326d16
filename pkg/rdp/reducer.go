package rdp

import (
	"container/list"
	"math"

	"github.com/lintang-b-s/rdp-simplifier/pkg/datastructure"
	"github.com/pkg/errors"
)

// https://en.wikipedia.org/wiki/Ramer%E2%80%93Douglas%E2%80%93Peucker_algorithm

// RamerDouglasPeucker returns the ascending indices of the points kept after simplifying
// points with tolerance epsilon. The first and last index are always kept.
func RamerDouglasPeucker(points []datastructure.Point, epsilon float64) ([]int, error) {
	return ramerDouglasPeucker(points, epsilon, Reduce)
}

// RamerDouglasPeuckerIterative is RamerDouglasPeucker without recursion. The output is
// identical; use it for long, nearly collinear curves.
func RamerDouglasPeuckerIterative(points []datastructure.Point, epsilon float64) ([]int, error) {
	return ramerDouglasPeucker(points, epsilon, ReduceIterative)
}

type reduceFunc func(points []datastructure.Point, startIndex, endIndex int, epsilonSquared float64,
	retained []int) ([]int, error)

func ramerDouglasPeucker(points []datastructure.Point, epsilon float64, reduce reduceFunc) ([]int, error) {
	if epsilon < 0 || math.IsNaN(epsilon) {
		return nil, errors.Wrapf(ErrInvalidArgument, "epsilon must be a non-negative number, got %v", epsilon)
	}
	if len(points) < 2 {
		return nil, errors.Wrapf(ErrInvalidArgument, "not enough points to simplify: %d", len(points))
	}

	retained := make([]int, 0, len(points))
	// the first point is always kept
	retained = append(retained, 0)

	return reduce(points, 0, len(points)-1, epsilon*epsilon, retained)
}

// Reduce appends to retained the indices kept in the range [startIndex, endIndex].
// startIndex itself is expected to be in retained already, either as the first point of
// the curve or as the end of the previous range.
func Reduce(points []datastructure.Point, startIndex, endIndex int, epsilonSquared float64,
	retained []int) ([]int, error) {
	if err := validateReduce(points, startIndex, endIndex, epsilonSquared, retained); err != nil {
		return nil, err
	}
	return reduce(points, startIndex, endIndex, epsilonSquared, retained), nil
}

func reduce(points []datastructure.Point, startIndex, endIndex int, epsilonSquared float64,
	retained []int) []int {
	maxDistanceSquared, maxDistanceIndex := FindMostDivergentPoint(points, startIndex, endIndex)

	if maxDistanceSquared > epsilonSquared {
		// lower range first, so maxDistanceIndex is appended exactly once and in order
		retained = reduce(points, startIndex, maxDistanceIndex, epsilonSquared, retained)
		return reduce(points, maxDistanceIndex, endIndex, epsilonSquared, retained)
	}

	// startIndex is included from the previous run
	return append(retained, endIndex)
}

// ReduceIterative has the same contract as Reduce but keeps the pending ranges on an
// explicit stack instead of the call stack.
func ReduceIterative(points []datastructure.Point, startIndex, endIndex int, epsilonSquared float64,
	retained []int) ([]int, error) {
	if err := validateReduce(points, startIndex, endIndex, epsilonSquared, retained); err != nil {
		return nil, err
	}

	stack := list.New()
	stack.PushBack([2]int{startIndex, endIndex})

	for stack.Len() > 0 {
		pair := stack.Remove(stack.Back()).([2]int)
		left, right := pair[0], pair[1]

		maxDistanceSquared, maxDistanceIndex := FindMostDivergentPoint(points, left, right)
		if maxDistanceSquared > epsilonSquared {
			// upper range pushed first so the lower one is popped first
			stack.PushBack([2]int{maxDistanceIndex, right})
			stack.PushBack([2]int{left, maxDistanceIndex})
			continue
		}

		retained = append(retained, right)
	}

	return retained, nil
}

func validateReduce(points []datastructure.Point, startIndex, endIndex int, epsilonSquared float64,
	retained []int) error {
	if len(points) < 2 {
		return errors.Wrapf(ErrInvalidArgument, "not enough points to simplify: %d", len(points))
	}
	if startIndex < 0 || startIndex >= endIndex || endIndex >= len(points) {
		return errors.Wrapf(ErrInvalidArgument, "invalid index range [%d, %d] for %d points",
			startIndex, endIndex, len(points))
	}
	if epsilonSquared < 0 || math.IsNaN(epsilonSquared) {
		return errors.Wrapf(ErrInvalidArgument, "squared epsilon must be non-negative, got %v", epsilonSquared)
	}
	if len(retained) == 0 || retained[0] != 0 {
		return errors.Wrap(ErrInvalidArgument, "retained indices must start with the first point")
	}
	return nil
}

// Gather returns points[i] for every i in retained, in order.
func Gather(points []datastructure.Point, retained []int) []datastructure.Point {
	simplified := make([]datastructure.Point, len(retained))
	for i, index := range retained {
		simplified[i] = points[index]
	}
	return simplified
}
