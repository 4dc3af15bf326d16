package trackio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/lintang-b-s/rdp-simplifier/pkg/datastructure"
	"github.com/lintang-b-s/rdp-simplifier/pkg/geo"
	"github.com/pkg/errors"
)

// ReadPolyline reads one encoded polyline per line. Blank lines are skipped and the
// track id is the line number.
func ReadPolyline(r io.Reader) ([]datastructure.Track, error) {
	tracks := make([]datastructure.Track, 0)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		coords, err := geo.CoordsFromPolyline(text)
		if err != nil {
			return nil, errors.Wrapf(err, "polyline line %d", line)
		}
		points := make([]datastructure.Point, len(coords))
		for i, c := range coords {
			points[i] = datastructure.NewPoint(c.Lon(), c.Lat())
		}
		tracks = append(tracks, datastructure.NewTrack(strconv.Itoa(line), points))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return tracks, nil
}

// WritePolyline writes one encoded polyline per track. The format has no room for
// ids, properties or indices.
func WritePolyline(w io.Writer, tracks []datastructure.Track) error {
	bw := bufio.NewWriter(w)
	for _, track := range tracks {
		if _, err := bw.WriteString(geo.PolylineFromCoords(track.Coordinates())); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
