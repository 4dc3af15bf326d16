package geo

import (
	"github.com/lintang-b-s/rdp-simplifier/pkg/curve"
	"github.com/lintang-b-s/rdp-simplifier/pkg/datastructure"
	"github.com/pkg/errors"
	"github.com/twpayne/go-polyline"
	"go.uber.org/zap"
)

const (
	DOUGLAS_PEUCKER_THRESHOLDS = 1.0 // 1.0 meter
)

// https://cartography-playground.gitlab.io/playgrounds/douglas-peucker-algorithm/

// RamerDouglasPeucker simplifies a lat/lon track. thresholdMeters is the maximum
// perpendicular deviation in meters, measured on a local equirectangular plane around the
// first coordinate. It returns the kept coordinates and their positions in coords.
func RamerDouglasPeucker(coords []datastructure.Coordinate, thresholdMeters float64,
	opts ...curve.Option) ([]datastructure.Coordinate, []int, error) {
	lats := make([]float64, len(coords))
	lons := make([]float64, len(coords))
	for i, c := range coords {
		lats[i] = c.Lat()
		lons[i] = c.Lon()
	}
	if err := curve.Validate(lons, lats, thresholdMeters); err != nil {
		return nil, nil, err
	}
	if len(coords) == 0 {
		return []datastructure.Coordinate{}, []int{}, nil
	}

	projected := ProjectEquirectangular(coords, coords[0])
	xs, ys := datastructure.SplitPoints(projected)

	opts = append(opts, curve.WithKeepIndex())
	res, err := curve.NewSimplifier(thresholdMeters, zap.NewNop(), opts...).Simplify(xs, ys)
	if err != nil {
		return nil, nil, err
	}

	simplifiedGeometry := make([]datastructure.Coordinate, 0, len(res.Index))
	for _, i := range res.Index {
		simplifiedGeometry = append(simplifiedGeometry, coords[i])
	}
	return simplifiedGeometry, res.Index, nil
}

func PolylineFromCoords(path []datastructure.Coordinate) string {
	coords := make([][]float64, 0, len(path))
	for _, p := range path {
		coords = append(coords, []float64{p.Lat(), p.Lon()})
	}
	return string(polyline.EncodeCoords(coords))
}

func CoordsFromPolyline(s string) ([]datastructure.Coordinate, error) {
	decoded, _, err := polyline.DecodeCoords([]byte(s))
	if err != nil {
		return nil, errors.Wrap(err, "decode polyline")
	}

	path := make([]datastructure.Coordinate, 0, len(decoded))
	for _, c := range decoded {
		path = append(path, datastructure.NewCoordinate(c[0], c[1]))
	}
	return path, nil
}
