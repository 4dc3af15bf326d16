package command

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/lintang-b-s/rdp-simplifier/pkg"
	"github.com/lintang-b-s/rdp-simplifier/pkg/batch"
	"github.com/lintang-b-s/rdp-simplifier/pkg/datastructure"
	"github.com/lintang-b-s/rdp-simplifier/pkg/logger"
	"github.com/lintang-b-s/rdp-simplifier/pkg/trackio"
	"github.com/lintang-b-s/rdp-simplifier/pkg/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	inputFlag        = "input"
	inputFormatFlag  = "input-format"
	outputFlag       = "output"
	outputFormatFlag = "output-format"
	epsilonFlag      = "epsilon"
	workersFlag      = "workers"
	geographicFlag   = "geographic"
	iterativeFlag    = "iterative"
	keepIndexFlag    = "keep-index"
	precisionFlag    = "precision"
)

var Cmd = &cobra.Command{
	Use:   "simplify",
	Short: "Simplify curves with the Ramer-Douglas-Peucker algorithm",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := logger.New()
		if err != nil {
			return err
		}
		defer log.Sync()

		opts, err := LoadOptions(cmd.Flags())
		if err != nil {
			return err
		}
		return Run(cmd.Context(), opts, cmd.OutOrStdout(), log)
	},
}

func init() {
	AddFlags(Cmd.Flags())
}

func AddFlags(flags *pflag.FlagSet) {
	flags.StringP(inputFlag, "i", "", "input file (csv, geojson, polyline or osm.pbf)")
	flags.String(inputFormatFlag, "", "input format, guessed from the extension when empty")
	flags.StringP(outputFlag, "o", "", "output file, stdout when empty")
	flags.String(outputFormatFlag, "", "output format, defaults to the input format (geojson for osm)")
	flags.Float64P(epsilonFlag, "e", pkg.DEFAULT_EPSILON, "tolerance, in meters with --geographic")
	flags.IntP(workersFlag, "w", pkg.DEFAULT_WORKERS, "number of tracks simplified concurrently")
	flags.Bool(geographicFlag, false, "treat x/y as lon/lat")
	flags.Bool(iterativeFlag, false, "use the non recursive reducer")
	flags.Bool(keepIndexFlag, false, "report the original index of every kept point")
	flags.Int(precisionFlag, -1, "round output coordinates to this many decimals, -1 keeps them as is")
}

type Options struct {
	Input        string
	InputFormat  trackio.Format
	Output       string
	OutputFormat trackio.Format
	Precision    int
	Batch        batch.Config
}

// LoadOptions reads the flags, falling back to RDP_* environment variables.
func LoadOptions(flags *pflag.FlagSet) (Options, error) {
	v := viper.New()
	v.SetEnvPrefix(pkg.ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return Options{}, err
	}

	opts := Options{
		Input:     v.GetString(inputFlag),
		Output:    v.GetString(outputFlag),
		Precision: v.GetInt(precisionFlag),
		Batch: batch.Config{
			Epsilon:    v.GetFloat64(epsilonFlag),
			Workers:    v.GetInt(workersFlag),
			Geographic: v.GetBool(geographicFlag),
			Iterative:  v.GetBool(iterativeFlag),
			KeepIndex:  v.GetBool(keepIndexFlag),
		},
	}
	if opts.Input == "" {
		return opts, errors.Errorf("--%s is required", inputFlag)
	}

	var err error
	if f := v.GetString(inputFormatFlag); f != "" {
		opts.InputFormat, err = trackio.ParseFormat(f)
	} else {
		opts.InputFormat, err = trackio.FormatFromPath(opts.Input)
	}
	if err != nil {
		return opts, err
	}

	switch f := v.GetString(outputFormatFlag); {
	case f != "":
		opts.OutputFormat, err = trackio.ParseFormat(f)
	case opts.Output != "":
		opts.OutputFormat, err = trackio.FormatFromPath(opts.Output)
	case opts.InputFormat == trackio.FORMAT_OSM:
		opts.OutputFormat = trackio.FORMAT_GEOJSON
	default:
		opts.OutputFormat = opts.InputFormat
	}
	if err != nil {
		return opts, err
	}
	if opts.OutputFormat == trackio.FORMAT_OSM {
		return opts, errors.Wrap(trackio.ErrUnsupportedFormat, "osm output")
	}
	if opts.Batch.Workers < 1 {
		return opts, errors.Errorf("--%s must be at least 1", workersFlag)
	}
	return opts, nil
}

// Run reads the input, simplifies every track and writes the result to the output
// file, or to stdout when no output file is set.
func Run(ctx context.Context, opts Options, stdout io.Writer, log *zap.Logger) error {
	tracks, err := trackio.ReadFile(ctx, opts.Input, opts.InputFormat, log)
	if err != nil {
		return err
	}

	results, err := batch.NewSimplifier(opts.Batch, log).Run(tracks)
	if err != nil {
		return err
	}

	simplified := make([]datastructure.Track, len(results))
	var indices [][]int
	if opts.Batch.KeepIndex {
		indices = make([][]int, len(results))
	}
	maxDeviation := 0.0
	for i, res := range results {
		simplified[i] = res.Track
		if indices != nil {
			indices[i] = res.Index
		}
		maxDeviation = max(maxDeviation, res.MaxDeviation)
	}
	if opts.Precision >= 0 {
		simplified = roundTracks(simplified, uint(opts.Precision))
	}
	log.Info("simplification done",
		zap.Int("tracks", len(results)),
		zap.Float64("max_deviation", maxDeviation),
		zap.String("output_format", string(opts.OutputFormat)),
	)

	w := stdout
	if opts.Output != "" {
		f, err := os.Create(opts.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	if err := trackio.Write(opts.OutputFormat, w, simplified, indices); err != nil {
		return errors.Wrapf(err, "write %s output", opts.OutputFormat)
	}
	return nil
}

func roundTracks(tracks []datastructure.Track, precision uint) []datastructure.Track {
	rounded := make([]datastructure.Track, len(tracks))
	for i, track := range tracks {
		xs, ys := track.Xs(), track.Ys()
		util.RoundFloats(xs, precision)
		util.RoundFloats(ys, precision)

		rounded[i] = track
		rounded[i].Points = datastructure.NewPoints(xs, ys)
	}
	return rounded
}
