package curve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

func TestSimplify(t *testing.T) {
	t.Run("classic example", func(t *testing.T) {
		res, err := Simplify([]float64{0, 1, 3, 5}, []float64{2, 1, 0, 1}, 0.5, false)
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 3, 5}, res.X)
		assert.Equal(t, []float64{2, 0, 1}, res.Y)
		assert.Nil(t, res.Index)
	})

	t.Run("keep index", func(t *testing.T) {
		res, err := Simplify([]float64{0, 1, 3, 5}, []float64{2, 1, 0, 1}, 0.5, true)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 2, 3}, res.Index)
		assert.Equal(t, 3, res.Len())
	})

	t.Run("two points are returned unchanged", func(t *testing.T) {
		xs := []float64{1, 2}
		ys := []float64{3, 4}
		res, err := Simplify(xs, ys, 1000, true)
		require.NoError(t, err)
		assert.Equal(t, xs, res.X)
		assert.Equal(t, ys, res.Y)
		assert.Equal(t, []int{0, 1}, res.Index)
	})

	t.Run("single and empty input pass through", func(t *testing.T) {
		res, err := Simplify([]float64{7}, []float64{8}, 1, true)
		require.NoError(t, err)
		assert.Equal(t, []float64{7}, res.X)
		assert.Equal(t, []int{0}, res.Index)

		res, err = Simplify(nil, nil, 1, false)
		require.NoError(t, err)
		assert.Equal(t, 0, res.Len())
	})

	t.Run("collinear points at zero epsilon", func(t *testing.T) {
		res, err := Simplify([]float64{0, 1, 2}, []float64{0, 0, 0}, 0, false)
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 2}, res.X)
	})

	t.Run("identical points collapse to the endpoints", func(t *testing.T) {
		res, err := Simplify([]float64{2, 2, 2, 2}, []float64{3, 3, 3, 3}, 0.5, true)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 3}, res.Index)
	})

	t.Run("result does not alias the input", func(t *testing.T) {
		xs := []float64{0, 1}
		res, err := Simplify(xs, []float64{0, 1}, 0, false)
		require.NoError(t, err)
		res.X[0] = 42
		assert.Equal(t, 0.0, xs[0])
	})
}

func TestSimplifyInvalidArgument(t *testing.T) {
	tests := []struct {
		name    string
		xs      []float64
		ys      []float64
		epsilon float64
	}{
		{"negative epsilon", []float64{0, 1, 2}, []float64{0, 1, 0}, -1},
		{"NaN epsilon", []float64{0, 1, 2}, []float64{0, 1, 0}, math.NaN()},
		{"length mismatch", []float64{0, 1, 2}, []float64{0, 1}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Simplify(tt.xs, tt.ys, tt.epsilon, false)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.Nil(t, res)
		})
	}
}

func TestSimplifyInvalidCoordinate(t *testing.T) {
	xs := []float64{0, math.NaN(), 2, 3}
	ys := []float64{0, 1, math.Inf(1), math.Inf(-1)}

	res, err := Simplify(xs, ys, 1, false)
	require.ErrorIs(t, err, ErrInvalidCoordinate)
	assert.Nil(t, res)
	assert.Len(t, multierr.Errors(err), 3)
	assert.Contains(t, err.Error(), "x[1]")
	assert.Contains(t, err.Error(), "y[2]")
	assert.Contains(t, err.Error(), "y[3]")
}

func TestSimplifierIterative(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4, 5, 6, 7}
	ys := []float64{0, 0.2, -0.1, 5, 6, 7, 6.9, 7}

	recursive, err := NewSimplifier(0.5, zap.NewNop(), WithKeepIndex()).Simplify(xs, ys)
	require.NoError(t, err)

	iterative, err := NewSimplifier(0.5, zap.NewNop(), WithKeepIndex(), WithIterative()).Simplify(xs, ys)
	require.NoError(t, err)

	assert.Equal(t, recursive, iterative)
	assert.Equal(t, 0, iterative.Index[0])
	assert.Equal(t, len(xs)-1, iterative.Index[len(iterative.Index)-1])
}

func TestSimplifyIdempotent(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	ys := []float64{0, 0.3, 1.4, 0.9, 3.1, 2.2, 2.4, 5.0, 4.1, 4.0}

	first, err := Simplify(xs, ys, 0.4, false)
	require.NoError(t, err)

	second, err := Simplify(first.X, first.Y, 0.4, false)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
