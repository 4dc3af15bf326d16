package datastructure

// Track is a named, ordered curve. For geographic data x holds the longitude
// and y the latitude.
type Track struct {
	ID         string
	Points     []Point
	Properties map[string]interface{}
}

func NewTrack(id string, points []Point) Track {
	return Track{
		ID:         id,
		Points:     points,
		Properties: make(map[string]interface{}),
	}
}

func (t Track) Len() int {
	return len(t.Points)
}

func (t Track) Xs() []float64 {
	xs, _ := SplitPoints(t.Points)
	return xs
}

func (t Track) Ys() []float64 {
	_, ys := SplitPoints(t.Points)
	return ys
}

func (t Track) Coordinates() []Coordinate {
	return CoordinatesFromPoints(t.Points)
}
