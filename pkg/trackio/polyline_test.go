package trackio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolylineReadWrite(t *testing.T) {
	in := "_p~iF~ps|U_ulLnnqC_mqNvxq`@\n\n_p~iF~ps|U_ulLnnqC\n"

	tracks, err := ReadPolyline(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, tracks, 2)

	assert.Equal(t, "1", tracks[0].ID)
	assert.Equal(t, 3, tracks[0].Len())
	// x is the longitude
	assert.InDelta(t, -120.2, tracks[0].Points[0].X(), 1e-9)
	assert.InDelta(t, 38.5, tracks[0].Points[0].Y(), 1e-9)
	assert.Equal(t, "3", tracks[1].ID)
	assert.Equal(t, 2, tracks[1].Len())

	var buf bytes.Buffer
	require.NoError(t, WritePolyline(&buf, tracks))
	assert.Equal(t, "_p~iF~ps|U_ulLnnqC_mqNvxq`@\n_p~iF~ps|U_ulLnnqC\n", buf.String())
}

func TestReadPolylineInvalid(t *testing.T) {
	_, err := ReadPolyline(strings.NewReader("_p~iF~ps|U_\n"))
	assert.Error(t, err)
}
