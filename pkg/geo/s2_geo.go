package geo

import (
	"math"

	"github.com/golang/geo/s2"
	"github.com/lintang-b-s/rdp-simplifier/pkg/datastructure"
	"github.com/lintang-b-s/rdp-simplifier/pkg/rdp"
)

func toS2Point(c datastructure.Coordinate) s2.Point {
	return s2.PointFromLatLng(s2.LatLngFromDegrees(c.Lat(), c.Lon()))
}

// CrossTrackDistance returns the distance in meters from p to the great circle through
// lineStart and lineEnd. If both line points are the same it is the distance to that point.
func CrossTrackDistance(p, lineStart, lineEnd datastructure.Coordinate) float64 {
	pS2 := toS2Point(p)
	startS2 := toS2Point(lineStart)
	if lineStart == lineEnd {
		return pS2.Distance(startS2).Radians() * earthRadiusM
	}
	endS2 := toS2Point(lineEnd)

	normal := startS2.PointCross(endS2).Vector.Normalize()
	sin := math.Max(-1, math.Min(1, pS2.Vector.Dot(normal)))

	return math.Abs(math.Asin(sin)) * earthRadiusM
}

// MaxDeviationMeters is the largest cross track distance between a discarded coordinate
// and the great circle through the two kept coordinates around it.
func MaxDeviationMeters(coords []datastructure.Coordinate, retained []int) (float64, error) {
	if err := rdp.ValidateRetained(len(coords), retained); err != nil {
		return 0, err
	}

	var maxDist float64
	for k := 1; k < len(retained); k++ {
		left, right := retained[k-1], retained[k]
		// swep over range to find the farthest point from the segment (left,right)
		for i := left + 1; i < right; i++ {
			maxDist = math.Max(maxDist, CrossTrackDistance(coords[i], coords[left], coords[right]))
		}
	}
	return maxDist, nil
}
