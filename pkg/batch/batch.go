package batch

import (
	"sort"

	"github.com/lintang-b-s/rdp-simplifier/pkg/concurrent"
	"github.com/lintang-b-s/rdp-simplifier/pkg/curve"
	"github.com/lintang-b-s/rdp-simplifier/pkg/datastructure"
	"github.com/lintang-b-s/rdp-simplifier/pkg/geo"
	"github.com/lintang-b-s/rdp-simplifier/pkg/rdp"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type Config struct {
	// Epsilon is in the unit of the coordinates, or in meters when Geographic is set.
	Epsilon float64
	Workers int
	// Geographic reads x as longitude and y as latitude.
	Geographic bool
	Iterative  bool
	KeepIndex  bool
}

type Result struct {
	Track        datastructure.Track
	Original     int // position of the track in the input
	OriginalLen  int
	Index        []int
	MaxDeviation float64
	// LengthKM and SimplifiedLengthKM are only set in geographic mode.
	LengthKM           float64
	SimplifiedLengthKM float64
}

type Simplifier struct {
	cfg    Config
	logger *zap.Logger
}

func NewSimplifier(cfg Config, logger *zap.Logger) *Simplifier {
	return &Simplifier{
		cfg:    cfg,
		logger: logger,
	}
}

type job struct {
	pos   int
	track datastructure.Track
}

type jobResult struct {
	res Result
	err error
}

// Run simplifies every track, one track per worker. Results are in input order.
// If any track fails nothing is returned and the error lists every failed track.
func (s *Simplifier) Run(tracks []datastructure.Track) ([]Result, error) {
	jobs := make([]job, len(tracks))
	for i, t := range tracks {
		jobs[i] = job{pos: i, track: t}
	}

	s.logger.Sugar().Infof("simplifying %d tracks with %d workers, epsilon %v", len(tracks), s.cfg.Workers, s.cfg.Epsilon)
	jobResults := concurrent.Run(s.cfg.Workers, jobs, s.simplifyTrack)

	var err error
	results := make([]Result, 0, len(jobResults))
	for _, jr := range jobResults {
		if jr.err != nil {
			err = multierr.Append(err, jr.err)
			continue
		}
		results = append(results, jr.res)
	}
	if err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Original < results[j].Original
	})

	pointsIn, pointsOut := 0, 0
	for _, res := range results {
		pointsIn += res.OriginalLen
		pointsOut += res.Track.Len()
	}
	s.logger.Sugar().Infof("simplified %d tracks: %d points -> %d points", len(results), pointsIn, pointsOut)
	if s.cfg.Geographic {
		lengthIn, lengthOut := 0.0, 0.0
		for _, res := range results {
			lengthIn += res.LengthKM
			lengthOut += res.SimplifiedLengthKM
		}
		s.logger.Sugar().Infof("track length: %.3f km -> %.3f km", lengthIn, lengthOut)
	}

	return results, nil
}

func (s *Simplifier) simplifyTrack(j job) jobResult {
	opts := []curve.Option{}
	if s.cfg.Iterative {
		opts = append(opts, curve.WithIterative())
	}

	var (
		retained            []int
		deviation           float64
		length, lengthAfter float64
		err                 error
	)
	if s.cfg.Geographic {
		coords := j.track.Coordinates()
		var simplifiedCoords []datastructure.Coordinate
		simplifiedCoords, retained, err = geo.RamerDouglasPeucker(coords, s.cfg.Epsilon, opts...)
		if err == nil && len(coords) >= 2 {
			deviation, err = geo.MaxDeviationMeters(coords, retained)
		}
		length, lengthAfter = geo.PathLengthKM(coords), geo.PathLengthKM(simplifiedCoords)
	} else {
		opts = append(opts, curve.WithKeepIndex())
		var res *curve.Result
		res, err = curve.NewSimplifier(s.cfg.Epsilon, s.logger, opts...).Simplify(j.track.Xs(), j.track.Ys())
		if err == nil {
			retained = res.Index
			if len(retained) >= 2 {
				deviation, err = rdp.MaxDeviation(j.track.Points, retained)
			}
		}
	}
	if err != nil {
		return jobResult{err: errors.Wrapf(err, "track %q (#%d)", j.track.ID, j.pos)}
	}

	simplified := datastructure.NewTrack(j.track.ID, rdp.Gather(j.track.Points, retained))
	for k, v := range j.track.Properties {
		simplified.Properties[k] = v
	}

	res := Result{
		Track:        simplified,
		Original:     j.pos,
		OriginalLen:  j.track.Len(),
		MaxDeviation: deviation,

		LengthKM:           length,
		SimplifiedLengthKM: lengthAfter,
	}
	if s.cfg.KeepIndex {
		res.Index = retained
	}
	return jobResult{res: res}
}
