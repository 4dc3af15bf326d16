package trackio

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/lintang-b-s/rdp-simplifier/pkg/datastructure"
	"github.com/pkg/errors"
)

const DEFAULT_TRACK_ID = "0"

var (
	xColumnNames     = []string{"x", "lon", "lng", "longitude"}
	yColumnNames     = []string{"y", "lat", "latitude"}
	trackColumnNames = []string{"track", "track_id", "id"}
)

type csvColumns struct {
	x, y, track int
}

// ReadCSV reads x,y rows, with an optional header and an optional third track column.
// Rows sharing a track id form one track, in order of first appearance.
func ReadCSV(r io.Reader) ([]datastructure.Track, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "read csv")
	}
	if len(records) == 0 {
		return []datastructure.Track{}, nil
	}

	cols := csvColumns{x: 0, y: 1, track: 2}
	start := 0
	if _, err := strconv.ParseFloat(strings.TrimSpace(records[0][0]), 64); err != nil {
		cols, err = parseHeader(records[0])
		if err != nil {
			return nil, err
		}
		start = 1
	}

	order := make([]string, 0)
	points := make(map[string][]datastructure.Point)
	for i := start; i < len(records); i++ {
		rec := records[i]
		line := i + 1
		if len(rec) <= max(cols.x, cols.y) {
			return nil, errors.Errorf("csv line %d: expected at least %d fields, got %d", line, max(cols.x, cols.y)+1, len(rec))
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(rec[cols.x]), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "csv line %d: x", line)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(rec[cols.y]), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "csv line %d: y", line)
		}

		id := DEFAULT_TRACK_ID
		if cols.track >= 0 && cols.track < len(rec) {
			id = strings.TrimSpace(rec[cols.track])
		}
		if _, ok := points[id]; !ok {
			order = append(order, id)
		}
		points[id] = append(points[id], datastructure.NewPoint(x, y))
	}

	tracks := make([]datastructure.Track, 0, len(order))
	for _, id := range order {
		tracks = append(tracks, datastructure.NewTrack(id, points[id]))
	}
	return tracks, nil
}

func parseHeader(header []string) (csvColumns, error) {
	cols := csvColumns{x: -1, y: -1, track: -1}
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		switch {
		case contains(xColumnNames, name):
			cols.x = i
		case contains(yColumnNames, name):
			cols.y = i
		case contains(trackColumnNames, name):
			cols.track = i
		}
	}
	if cols.x < 0 || cols.y < 0 {
		return cols, errors.Errorf("csv header %v: missing x or y column", header)
	}
	return cols, nil
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// WriteCSV writes track,x,y rows, or track,index,x,y when indices are given.
func WriteCSV(w io.Writer, tracks []datastructure.Track, indices [][]int) error {
	writer := csv.NewWriter(w)

	header := []string{"track", "x", "y"}
	if indices != nil {
		header = []string{"track", "index", "x", "y"}
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for i, track := range tracks {
		for j, p := range track.Points {
			x := strconv.FormatFloat(p.X(), 'f', -1, 64)
			y := strconv.FormatFloat(p.Y(), 'f', -1, 64)
			rec := []string{track.ID, x, y}
			if indices != nil {
				rec = []string{track.ID, strconv.Itoa(indices[i][j]), x, y}
			}
			if err := writer.Write(rec); err != nil {
				return err
			}
		}
	}

	writer.Flush()
	return writer.Error()
}
