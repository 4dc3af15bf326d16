package rdp

import (
	"testing"

	"github.com/lintang-b-s/rdp-simplifier/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxDeviation(t *testing.T) {
	points := datastructure.NewPoints([]float64{0, 1, 3, 5}, []float64{2, 1, 0, 1})

	dev, err := MaxDeviation(points, []int{0, 2, 3})
	require.NoError(t, err)
	assert.InDelta(t, 1/3.605551275463989, dev, 1e-12) // 1 / sqrt(13)

	dev, err = MaxDeviation(points, []int{0, 1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 0.0, dev)
}

func TestValidateRetained(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		retained []int
		wantErr  bool
	}{
		{"valid", 4, []int{0, 2, 3}, false},
		{"endpoints only", 4, []int{0, 3}, false},
		{"missing last", 4, []int{0, 2}, true},
		{"missing first", 4, []int{1, 3}, true},
		{"duplicate", 4, []int{0, 2, 2, 3}, true},
		{"unordered", 4, []int{0, 2, 1, 3}, true},
		{"too few points", 1, []int{0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRetained(tt.n, tt.retained)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			assert.NoError(t, err)
		})
	}
}
