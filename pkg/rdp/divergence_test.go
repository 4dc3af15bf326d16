package rdp

import (
	"testing"

	"github.com/lintang-b-s/rdp-simplifier/pkg/datastructure"
	"github.com/stretchr/testify/assert"
)

func TestFindMostDivergentPoint(t *testing.T) {
	t.Run("classic example", func(t *testing.T) {
		points := datastructure.NewPoints([]float64{0, 1, 3, 5}, []float64{2, 1, 0, 1})

		d, idx := FindMostDivergentPoint(points, 0, 3)
		assert.Equal(t, 2, idx)
		assert.InDelta(t, 49.0/26.0, d, 1e-12)
	})

	t.Run("ties keep the first index", func(t *testing.T) {
		points := datastructure.NewPoints([]float64{0, 1, 2, 3, 4}, []float64{0, 1, -1, 1, 0})

		d, idx := FindMostDivergentPoint(points, 0, 4)
		assert.Equal(t, 1, idx)
		assert.InDelta(t, 1.0, d, 1e-12)
	})

	t.Run("no interior points", func(t *testing.T) {
		points := datastructure.NewPoints([]float64{0, 1, 2}, []float64{0, 5, 0})

		d, idx := FindMostDivergentPoint(points, 1, 2)
		assert.Equal(t, 1, idx)
		assert.Equal(t, 0.0, d)
	})

	t.Run("endpoints are never candidates", func(t *testing.T) {
		points := datastructure.NewPoints([]float64{0, 1, 2, 3}, []float64{100, 0, 0, -100})

		d, idx := FindMostDivergentPoint(points, 1, 2)
		assert.Equal(t, 1, idx)
		assert.Equal(t, 0.0, d)
	})

	t.Run("sub range", func(t *testing.T) {
		points := datastructure.NewPoints([]float64{0, 1, 2, 3, 4, 5}, []float64{9, 0, 0, 2, 0, 9})

		_, idx := FindMostDivergentPoint(points, 1, 4)
		assert.Equal(t, 3, idx)
	})
}
