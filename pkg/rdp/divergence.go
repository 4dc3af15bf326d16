package rdp

import "github.com/lintang-b-s/rdp-simplifier/pkg/datastructure"

// FindMostDivergentPoint sweeps the points strictly between startIndex and endIndex
// and returns the largest squared distance to the chord (points[startIndex], points[endIndex])
// together with the index of the first point reaching it.
// If there is no interior point it returns (0, startIndex).
func FindMostDivergentPoint(points []datastructure.Point, startIndex, endIndex int) (float64, int) {
	var maxDistanceSquared float64
	maxDistanceIndex := startIndex

	lineStart := points[startIndex]
	lineEnd := points[endIndex]
	for i := startIndex + 1; i < endIndex; i++ {
		d := PerpendicularDistanceSquared(points[i], lineStart, lineEnd)
		if d > maxDistanceSquared {
			maxDistanceSquared = d
			maxDistanceIndex = i
		}
	}

	return maxDistanceSquared, maxDistanceIndex
}
