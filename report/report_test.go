package report_test

import (
	"bytes"
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/blobscan/blob"
	"github.com/katalvlaran/blobscan/lutz"
	"github.com/katalvlaran/blobscan/report"
)

func objects() []*blob.Object {
	a := blob.FromPixels(
		blob.NewPixel(0, 0, 1),
		blob.NewPixel(1, 0, 3),
	)
	b := blob.FromPixels(blob.NewPixel(4, 2, 2))
	return []*blob.Object{a, b}
}

func TestBuild(t *testing.T) {
	r := report.Build("test.csv", objects())
	_, err := uuid.Parse(r.RunID)
	require.NoError(t, err)
	assert.Equal(t, "test.csv", r.Source)
	assert.Nil(t, r.Stats)
	require.Len(t, r.Objects, 2)

	a := r.Objects[0]
	assert.Equal(t, 0, a.Index)
	assert.Equal(t, 2, a.Pixels)
	assert.Equal(t, report.Bounds{XMin: 0, XMax: 1, YMin: 0, YMax: 0}, a.Bounds)
	assert.Equal(t, 1.0, a.Min)
	assert.Equal(t, 3.0, a.Max)
	assert.Equal(t, 4.0, a.Sum)
	assert.Equal(t, [2]float64{0.5, 0}, a.Centroid)
	assert.InDelta(t, 0.75, a.WeightedCentroid[0], 1e-12)

	assert.NotEqual(t, a.ID, r.Objects[1].ID)
	assert.NotEqual(t, r.RunID, report.Build("test.csv", nil).RunID)
}

func TestBuild_Empty(t *testing.T) {
	r := report.Build("empty", nil)
	assert.NotNil(t, r.Objects)
	assert.Empty(t, r.Objects)
}

func TestWithStats(t *testing.T) {
	r := report.Build("x", nil).WithStats(lutz.Stats{Rows: 3, Foreground: 5, Emitted: 1, Discarded: 2})
	require.NotNil(t, r.Stats)
	assert.Equal(t, report.Stats{Rows: 3, Foreground: 5, Emitted: 1, Discarded: 2}, *r.Stats)
}

func TestWriteJSON(t *testing.T) {
	r := report.Build("j", objects())
	var buf bytes.Buffer
	require.NoError(t, r.Write(&buf, "json"))

	var back report.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, r, back)
	assert.Contains(t, buf.String(), `"weighted_centroid"`)
}

func TestWriteYAML(t *testing.T) {
	r := report.Build("y", objects()).WithStats(lutz.Stats{Rows: 3})
	var buf bytes.Buffer
	require.NoError(t, r.Write(&buf, "yaml"))

	var back report.Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, r, back)
	assert.Contains(t, buf.String(), "run_id: ")
}

func TestWriteTable(t *testing.T) {
	r := report.Build("grid.png", objects())
	var buf bytes.Buffer
	require.NoError(t, r.Write(&buf, "table"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "grid.png: 2 objects"))
	assert.Contains(t, lines[1], "pixels")
	assert.Contains(t, lines[3], "4-4")

	buf.Reset()
	require.NoError(t, report.Build("none", nil).WriteTable(&buf))
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := report.Build("x", nil).Write(&bytes.Buffer{}, "xml")
	require.ErrorIs(t, err, report.ErrFormat)
}

func TestPlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "objects.png")
	require.NoError(t, report.Plot(objects(), 6, 3, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Greater(t, img.Bounds().Dx(), img.Bounds().Dy(), "wide grid gives a wide canvas")
}

func TestPlot_Errors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.png")
	require.ErrorIs(t, report.Plot(nil, 0, 3, path), report.ErrGridSize)
	require.Error(t, report.Plot(objects(), 6, 3, filepath.Join(t.TempDir(), "x.unknown")))
}
