package command

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lintang-b-s/rdp-simplifier/pkg/trackio"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func parseFlags(t *testing.T, args ...string) *pflag.FlagSet {
	flags := pflag.NewFlagSet("simplify", pflag.ContinueOnError)
	AddFlags(flags)
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestLoadOptions(t *testing.T) {
	opts, err := LoadOptions(parseFlags(t, "-i", "roads.osm.pbf", "-e", "2.5", "--geographic", "--keep-index"))
	require.NoError(t, err)
	assert.Equal(t, trackio.FORMAT_OSM, opts.InputFormat)
	assert.Equal(t, trackio.FORMAT_GEOJSON, opts.OutputFormat)
	assert.Equal(t, 2.5, opts.Batch.Epsilon)
	assert.True(t, opts.Batch.Geographic)
	assert.True(t, opts.Batch.KeepIndex)
	assert.False(t, opts.Batch.Iterative)

	opts, err = LoadOptions(parseFlags(t, "-i", "track.csv", "-o", "out.polyline"))
	require.NoError(t, err)
	assert.Equal(t, trackio.FORMAT_CSV, opts.InputFormat)
	assert.Equal(t, trackio.FORMAT_POLYLINE, opts.OutputFormat)
	assert.Equal(t, -1, opts.Precision)
}

func TestLoadOptionsFromEnv(t *testing.T) {
	t.Setenv("RDP_EPSILON", "7")
	t.Setenv("RDP_OUTPUT_FORMAT", "csv")

	opts, err := LoadOptions(parseFlags(t, "-i", "track.geojson"))
	require.NoError(t, err)
	assert.Equal(t, 7.0, opts.Batch.Epsilon)
	assert.Equal(t, trackio.FORMAT_CSV, opts.OutputFormat)
}

func TestLoadOptionsErrors(t *testing.T) {
	_, err := LoadOptions(parseFlags(t))
	assert.Error(t, err)

	_, err = LoadOptions(parseFlags(t, "-i", "track.gpx"))
	assert.ErrorIs(t, err, trackio.ErrUnsupportedFormat)

	_, err = LoadOptions(parseFlags(t, "-i", "track.csv", "--output-format", "osm"))
	assert.ErrorIs(t, err, trackio.ErrUnsupportedFormat)

	_, err = LoadOptions(parseFlags(t, "-i", "track.csv", "-w", "0"))
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "track.csv")
	require.NoError(t, os.WriteFile(input, []byte("x,y\n0,2\n1,1\n3,0\n5,1\n"), 0644))

	opts, err := LoadOptions(parseFlags(t, "-i", input, "-e", "0.5", "--keep-index"))
	require.NoError(t, err)

	var stdout bytes.Buffer
	require.NoError(t, Run(context.Background(), opts, &stdout, zap.NewNop()))
	assert.Equal(t, "track,index,x,y\n0,0,0,2\n0,2,3,0\n0,3,5,1\n", stdout.String())
}

func TestRunToFileWithPrecision(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "track.csv")
	output := filepath.Join(dir, "out.csv")
	require.NoError(t, os.WriteFile(input, []byte("0.123456,0\n1,0.000001\n2.987654,0\n"), 0644))

	opts, err := LoadOptions(parseFlags(t, "-i", input, "-o", output, "-e", "0.1", "--precision", "2"))
	require.NoError(t, err)

	var stdout bytes.Buffer
	require.NoError(t, Run(context.Background(), opts, &stdout, zap.NewNop()))
	assert.Empty(t, stdout.String())

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "track,x,y\n0,0.12,0\n0,2.99,0\n", string(data))
}

func TestRunInvalidInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "track.csv")
	require.NoError(t, os.WriteFile(input, []byte("0,0\n1,NaN\n2,0\n"), 0644))

	opts, err := LoadOptions(parseFlags(t, "-i", input))
	require.NoError(t, err)

	var stdout bytes.Buffer
	err = Run(context.Background(), opts, &stdout, zap.NewNop())
	assert.Error(t, err)
	assert.Empty(t, stdout.String())
}
