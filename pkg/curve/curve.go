package curve

import (
	"math"

	"github.com/lintang-b-s/rdp-simplifier/pkg/datastructure"
	"github.com/lintang-b-s/rdp-simplifier/pkg/rdp"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var (
	ErrInvalidArgument   = rdp.ErrInvalidArgument
	ErrInvalidCoordinate = rdp.ErrInvalidCoordinate
)

// Result is the simplified curve. Index holds the 0-based positions of the kept
// points in the input and is only set when requested.
type Result struct {
	X     []float64
	Y     []float64
	Index []int
}

func (r *Result) Len() int {
	return len(r.X)
}

func (r *Result) Points() []datastructure.Point {
	return datastructure.NewPoints(r.X, r.Y)
}

// Simplify runs Ramer-Douglas-Peucker over the curve (xs[i], ys[i]).
// Curves with two points or less are returned unchanged.
func Simplify(xs, ys []float64, epsilon float64, keepIndex bool) (*Result, error) {
	opts := []Option{}
	if keepIndex {
		opts = append(opts, WithKeepIndex())
	}
	return NewSimplifier(epsilon, zap.NewNop(), opts...).Simplify(xs, ys)
}

type Option func(s *Simplifier)

// WithIterative selects the explicit stack reducer.
func WithIterative() Option {
	return func(s *Simplifier) {
		s.iterative = true
	}
}

func WithKeepIndex() Option {
	return func(s *Simplifier) {
		s.keepIndex = true
	}
}

type Simplifier struct {
	epsilon   float64
	iterative bool
	keepIndex bool
	logger    *zap.Logger
}

func NewSimplifier(epsilon float64, logger *zap.Logger, opts ...Option) *Simplifier {
	s := &Simplifier{
		epsilon: epsilon,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Simplifier) Epsilon() float64 {
	return s.epsilon
}

func (s *Simplifier) Simplify(xs, ys []float64) (*Result, error) {
	if err := Validate(xs, ys, s.epsilon); err != nil {
		return nil, err
	}

	n := len(xs)
	if n <= 2 {
		return s.newResult(xs, ys, identity(n)), nil
	}

	points := datastructure.NewPoints(xs, ys)
	var (
		retained []int
		err      error
	)
	if s.iterative {
		retained, err = rdp.RamerDouglasPeuckerIterative(points, s.epsilon)
	} else {
		retained, err = rdp.RamerDouglasPeucker(points, s.epsilon)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Debug("simplified curve",
		zap.Int("points", n),
		zap.Int("retained", len(retained)),
		zap.Float64("epsilon", s.epsilon),
	)

	return s.newResult(xs, ys, retained), nil
}

func (s *Simplifier) newResult(xs, ys []float64, retained []int) *Result {
	res := &Result{
		X: make([]float64, len(retained)),
		Y: make([]float64, len(retained)),
	}
	for i, index := range retained {
		res.X[i] = xs[index]
		res.Y[i] = ys[index]
	}
	if s.keepIndex {
		res.Index = retained
	}
	return res
}

// Validate checks the input of Simplify. All invalid coordinates are reported, not only the first one.
func Validate(xs, ys []float64, epsilon float64) error {
	if epsilon < 0 || math.IsNaN(epsilon) {
		return errors.Wrapf(ErrInvalidArgument, "epsilon must be a non-negative number, got %v", epsilon)
	}
	if len(xs) != len(ys) {
		return errors.Wrapf(ErrInvalidArgument, "x and y must be of equal length, got %d and %d", len(xs), len(ys))
	}

	var err error
	for i := range xs {
		if !isFinite(xs[i]) {
			err = multierr.Append(err, errors.Wrapf(ErrInvalidCoordinate, "x[%d] = %v", i, xs[i]))
		}
		if !isFinite(ys[i]) {
			err = multierr.Append(err, errors.Wrapf(ErrInvalidCoordinate, "y[%d] = %v", i, ys[i]))
		}
	}
	return err
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func identity(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}
