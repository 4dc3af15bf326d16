package datastructure

// Point is a planar 2-D point. Equality is plain value equality.
type Point struct {
	x float64
	y float64
}

func NewPoint(x, y float64) Point {
	return Point{
		x: x,
		y: y,
	}
}

func (p Point) X() float64 {
	return p.x
}

func (p Point) Y() float64 {
	return p.y
}

// Sub returns p - q as a vector.
func (p Point) Sub(q Point) (float64, float64) {
	return p.x - q.x, p.y - q.y
}

// NewPoints zips xs and ys. Both slices must have the same length.
func NewPoints(xs, ys []float64) []Point {
	points := make([]Point, len(xs))
	for i := range xs {
		points[i] = NewPoint(xs[i], ys[i])
	}
	return points
}

func SplitPoints(points []Point) ([]float64, []float64) {
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.x
		ys[i] = p.y
	}
	return xs, ys
}
