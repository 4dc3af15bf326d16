package osmparser

import (
	"context"
	"io"
	"strconv"

	"github.com/lintang-b-s/rdp-simplifier/pkg/datastructure"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type nodeCoord struct {
	lat float64
	lon float64
}

type osmWay struct {
	id    int64
	nodes []int64
	tags  map[string]string
}

// OsmParser extracts the geometry of every accepted highway way as a track,
// with x = longitude and y = latitude.
type OsmParser struct {
	wayNodeMap      map[int64]struct{}
	acceptedNodeMap map[int64]nodeCoord
	ways            []osmWay
	logger          *zap.Logger
}

func NewOSMParser(logger *zap.Logger) *OsmParser {
	return &OsmParser{
		wayNodeMap:      make(map[int64]struct{}),
		acceptedNodeMap: make(map[int64]nodeCoord),
		ways:            make([]osmWay, 0),
		logger:          logger,
	}
}

// Parse reads f twice: ways first, then the coordinates of the nodes they reference.
func (p *OsmParser) Parse(ctx context.Context, f io.ReadSeeker) ([]datastructure.Track, error) {
	scanner := osmpbf.New(ctx, f, 1)
	// must not be parallel
	scanner.SkipNodes = true
	scanner.SkipRelations = true
	countWays := 0
	for scanner.Scan() {
		way, ok := scanner.Object().(*osm.Way)
		if !ok {
			continue
		}
		if p.processWay(way) {
			if (countWays+1)%PROGRESS_LOG_INTERVAL == 0 {
				p.logger.Sugar().Infof("scanning openstreetmap ways: %d...", countWays+1)
			}
			countWays++
		}
	}
	err := scanner.Err()
	scanner.Close()
	if err != nil {
		return nil, errors.Wrap(err, "scan openstreetmap ways")
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, errors.Wrap(err, "rewind openstreetmap file")
	}

	scanner = osmpbf.New(ctx, f, 1)
	defer scanner.Close()
	scanner.SkipWays = true
	scanner.SkipRelations = true
	countNodes := 0
	for scanner.Scan() {
		node, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}
		if p.processNode(node) {
			if (countNodes+1)%PROGRESS_LOG_INTERVAL == 0 {
				p.logger.Sugar().Infof("processing openstreetmap nodes: %d...", countNodes+1)
			}
			countNodes++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scan openstreetmap nodes")
	}

	p.logger.Sugar().Infof("openstreetmap: %d ways, %d nodes", countWays, countNodes)
	return p.BuildTracks(), nil
}

func (p *OsmParser) processWay(way *osm.Way) bool {
	if len(way.Nodes) < 2 || !acceptOsmWay(way) {
		return false
	}

	w := osmWay{
		id:    int64(way.ID),
		nodes: make([]int64, 0, len(way.Nodes)),
		tags:  make(map[string]string),
	}
	for _, node := range way.Nodes {
		w.nodes = append(w.nodes, int64(node.ID))
		p.wayNodeMap[int64(node.ID)] = struct{}{}
	}
	for _, key := range keptTags {
		if val := way.Tags.Find(key); val != "" {
			w.tags[key] = val
		}
	}
	p.ways = append(p.ways, w)
	return true
}

func (p *OsmParser) processNode(node *osm.Node) bool {
	if _, ok := p.wayNodeMap[int64(node.ID)]; !ok {
		return false
	}
	p.acceptedNodeMap[int64(node.ID)] = nodeCoord{
		lat: node.Lat,
		lon: node.Lon,
	}
	return true
}

// BuildTracks turns the scanned ways into tracks, in scan order. Nodes missing from the
// extract are skipped and ways left with fewer than 2 points are dropped.
func (p *OsmParser) BuildTracks() []datastructure.Track {
	tracks := make([]datastructure.Track, 0, len(p.ways))
	missing := 0
	for _, way := range p.ways {
		points := make([]datastructure.Point, 0, len(way.nodes))
		for _, nodeID := range way.nodes {
			coord, ok := p.acceptedNodeMap[nodeID]
			if !ok {
				missing++
				continue
			}
			points = append(points, datastructure.NewPoint(coord.lon, coord.lat))
		}
		if len(points) < 2 {
			continue
		}

		track := datastructure.NewTrack(strconv.FormatInt(way.id, 10), points)
		track.Properties["osm_way_id"] = way.id
		for k, v := range way.tags {
			track.Properties[k] = v
		}
		tracks = append(tracks, track)
	}
	if missing > 0 {
		p.logger.Sugar().Warnf("%d way nodes not found in the openstreetmap extract", missing)
	}
	return tracks
}

func acceptOsmWay(way *osm.Way) bool {
	highway := way.Tags.Find("highway")
	junction := way.Tags.Find("junction")
	if highway != "" {
		if _, ok := acceptedHighway[highway]; ok {
			return true
		}
	} else if junction != "" {
		return true
	}
	return false
}
