package trackio

import (
	"fmt"
	"io"

	"github.com/lintang-b-s/rdp-simplifier/pkg/datastructure"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

const RETAINED_INDEX_PROPERTY = "retained_index"

// ReadGeoJSON reads every LineString feature, and every line of a MultiLineString
// feature, as a track. Other geometries are rejected.
func ReadGeoJSON(r io.Reader) ([]datastructure.Track, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, errors.Wrap(err, "decode geojson")
	}

	tracks := make([]datastructure.Track, 0, len(fc.Features))
	for i, f := range fc.Features {
		id := featureID(f, i)
		switch g := f.Geometry.(type) {
		case orb.LineString:
			tracks = append(tracks, newGeoJSONTrack(id, f, g))
		case orb.MultiLineString:
			for k, ls := range g {
				tracks = append(tracks, newGeoJSONTrack(fmt.Sprintf("%s#%d", id, k), f, ls))
			}
		default:
			return nil, errors.Errorf("geojson feature %d: unsupported geometry %T", i, f.Geometry)
		}
	}
	return tracks, nil
}

func featureID(f *geojson.Feature, pos int) string {
	if f.ID != nil {
		return fmt.Sprint(f.ID)
	}
	if name, ok := f.Properties["name"]; ok {
		return fmt.Sprint(name)
	}
	return fmt.Sprint(pos)
}

func newGeoJSONTrack(id string, f *geojson.Feature, ls orb.LineString) datastructure.Track {
	points := make([]datastructure.Point, len(ls))
	for i, p := range ls {
		points[i] = datastructure.NewPoint(p.X(), p.Y())
	}

	track := datastructure.NewTrack(id, points)
	for k, v := range f.Properties {
		track.Properties[k] = v
	}
	return track
}

// WriteGeoJSON writes one LineString feature per track. When indices are given they are
// stored in the retained_index property.
func WriteGeoJSON(w io.Writer, tracks []datastructure.Track, indices [][]int) error {
	fc := geojson.NewFeatureCollection()
	for i, track := range tracks {
		ls := make(orb.LineString, len(track.Points))
		for j, p := range track.Points {
			ls[j] = orb.Point{p.X(), p.Y()}
		}

		f := geojson.NewFeature(ls)
		f.ID = track.ID
		for k, v := range track.Properties {
			f.Properties[k] = v
		}
		if indices != nil {
			f.Properties[RETAINED_INDEX_PROPERTY] = indices[i]
		}
		fc.Append(f)
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "encode geojson")
	}
	_, err = w.Write(data)
	return err
}
