package util

import "math"

func RoundFloat(val float64, precision uint) float64 {
	ratio := math.Pow(10, float64(precision))
	return math.Round(val*ratio) / ratio
}

// RoundFloats rounds every value in place.
func RoundFloats(vals []float64, precision uint) {
	for i := range vals {
		vals[i] = RoundFloat(vals[i], precision)
	}
}
