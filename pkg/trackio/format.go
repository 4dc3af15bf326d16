package trackio

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lintang-b-s/rdp-simplifier/pkg/datastructure"
	"github.com/lintang-b-s/rdp-simplifier/pkg/osmparser"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Format string

const (
	FORMAT_CSV      Format = "csv"
	FORMAT_GEOJSON  Format = "geojson"
	FORMAT_POLYLINE Format = "polyline"
	FORMAT_OSM      Format = "osm"
)

var ErrUnsupportedFormat = errors.New("unsupported format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FORMAT_CSV, FORMAT_GEOJSON, FORMAT_POLYLINE, FORMAT_OSM:
		return f, nil
	case "json":
		return FORMAT_GEOJSON, nil
	case "pbf":
		return FORMAT_OSM, nil
	default:
		return "", errors.Wrapf(ErrUnsupportedFormat, "%q", s)
	}
}

// FormatFromPath guesses the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	name := strings.ToLower(filepath.Base(path))
	switch {
	case strings.HasSuffix(name, ".osm.pbf"), strings.HasSuffix(name, ".pbf"):
		return FORMAT_OSM, nil
	case strings.HasSuffix(name, ".geojson"), strings.HasSuffix(name, ".json"):
		return FORMAT_GEOJSON, nil
	case strings.HasSuffix(name, ".csv"):
		return FORMAT_CSV, nil
	case strings.HasSuffix(name, ".polyline"), strings.HasSuffix(name, ".txt"):
		return FORMAT_POLYLINE, nil
	default:
		return "", errors.Wrapf(ErrUnsupportedFormat, "cannot guess format of %q", path)
	}
}

// Read decodes tracks from r. The osm format needs a seekable file, use ReadFile.
func Read(format Format, r io.Reader) ([]datastructure.Track, error) {
	switch format {
	case FORMAT_CSV:
		return ReadCSV(r)
	case FORMAT_GEOJSON:
		return ReadGeoJSON(r)
	case FORMAT_POLYLINE:
		return ReadPolyline(r)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "read %q", format)
	}
}

func ReadFile(ctx context.Context, path string, format Format, logger *zap.Logger) ([]datastructure.Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if format == FORMAT_OSM {
		return osmparser.NewOSMParser(logger).Parse(ctx, f)
	}

	tracks, err := Read(format, f)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return tracks, nil
}

// Write encodes tracks to w. indices may be nil; otherwise indices[i] are the
// original positions of the points of tracks[i].
func Write(format Format, w io.Writer, tracks []datastructure.Track, indices [][]int) error {
	if indices != nil && len(indices) != len(tracks) {
		return errors.Errorf("got %d index lists for %d tracks", len(indices), len(tracks))
	}

	switch format {
	case FORMAT_CSV:
		return WriteCSV(w, tracks, indices)
	case FORMAT_GEOJSON:
		return WriteGeoJSON(w, tracks, indices)
	case FORMAT_POLYLINE:
		return WritePolyline(w, tracks)
	default:
		return errors.Wrapf(ErrUnsupportedFormat, "write %q", format)
	}
}
