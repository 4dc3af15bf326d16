package geo

import (
	"math"

	"github.com/lintang-b-s/rdp-simplifier/pkg/datastructure"
)

const (
	earthRadiusKM = 6371.0
	earthRadiusM  = 6371007
)

func havFunction(angleRad float64) float64 {
	return (1 - math.Cos(angleRad)) / 2.0
}

func degreeToRadians(angle float64) float64 {
	return angle * (math.Pi / 180.0)
}

// very slow
func CalculateHaversineDistance(latOne, longOne, latTwo, longTwo float64) float64 {
	latOne = degreeToRadians(latOne)
	longOne = degreeToRadians(longOne)
	latTwo = degreeToRadians(latTwo)
	longTwo = degreeToRadians(longTwo)

	a := havFunction(latOne-latTwo) + math.Cos(latOne)*math.Cos(latTwo)*havFunction(longOne-longTwo)
	c := 2.0 * math.Asin(math.Sqrt(a))
	return earthRadiusKM * c
}

// ProjectEquirectangular maps coords onto a local plane in meters centered at origin.
// Good enough for tracks spanning a few tens of kilometers.
func ProjectEquirectangular(coords []datastructure.Coordinate, origin datastructure.Coordinate) []datastructure.Point {
	cosLat := math.Cos(degreeToRadians(origin.Lat()))

	points := make([]datastructure.Point, len(coords))
	for i, c := range coords {
		x := degreeToRadians(c.Lon()-origin.Lon()) * cosLat * earthRadiusM
		y := degreeToRadians(c.Lat()-origin.Lat()) * earthRadiusM
		points[i] = datastructure.NewPoint(x, y)
	}
	return points
}

// PathLengthKM sums the haversine length of consecutive coordinates.
func PathLengthKM(coords []datastructure.Coordinate) float64 {
	length := 0.0
	for i := 1; i < len(coords); i++ {
		length += CalculateHaversineDistance(coords[i-1].Lat(), coords[i-1].Lon(), coords[i].Lat(), coords[i].Lon())
	}
	return length
}
