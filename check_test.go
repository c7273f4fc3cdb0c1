package spritelint

import (
	"os"
	"testing"

	"github.com/bodgit/spritelint/sheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestCheckOK(t *testing.T) {
	path := tempFile(t, "sheet.png")
	// One 16 pixel band across the top is transparent, 6.25% of the sheet
	writeSheet(t, path, 1024, 256, 1024*16)

	r, err := newValidator(t, sheet.Default()).Check(path)
	require.NoError(t, err)
	assert.True(t, r.Passed())
	assert.Equal(t, "OK size=1024x256 alpha0=6.25% frame=256x256", r.String())
}

func TestCheckWrongSize(t *testing.T) {
	path := tempFile(t, "sheet.png")
	writeSheet(t, path, 512, 256, 512*32)

	r, err := newValidator(t, sheet.Default()).Check(path)
	require.NoError(t, err)
	assert.Equal(t, Fail, r.Status)
	assert.Equal(t, "FAIL wrong size 512x256 (expected 1024x256)", r.String())
	assert.Equal(t, []string{"wrong size 512x256 (expected 1024x256)"}, r.Reasons)
}

func TestCheckIndivisibleWidth(t *testing.T) {
	path := tempFile(t, "sheet.png")
	writeSheet(t, path, 1023, 256, 1023*32)

	r, err := newValidator(t, sheet.Default()).Check(path)
	require.NoError(t, err)
	assert.Equal(t, Fail, r.Status)
	// Both geometry rules run, the size failure is reported first
	assert.Equal(t, []string{
		"wrong size 1023x256 (expected 1024x256)",
		"width not divisible by 4: 1023x256",
	}, r.Reasons)
	assert.Equal(t, "FAIL wrong size 1023x256 (expected 1024x256)", r.String())
}

func TestCheckOpaque(t *testing.T) {
	path := tempFile(t, "sheet.png")
	writeSheet(t, path, 1024, 256, 0)

	r, err := newValidator(t, sheet.Default()).Check(path)
	require.NoError(t, err)
	assert.Equal(t, Fail, r.Status)
	assert.Equal(t, "FAIL no real transparency (alpha0=0.00%)", r.String())
}

func TestCheckThreshold(t *testing.T) {
	spec := sheet.Spec{Width: 100, Height: 100, Frames: 4, MinTransparent: 0.01}

	tables := []struct {
		transparent int
		want        string
	}{
		{99, "FAIL no real transparency (alpha0=0.99%)"},
		{100, "OK size=100x100 alpha0=1.00% frame=25x100"},
		{101, "OK size=100x100 alpha0=1.01% frame=25x100"},
	}

	for _, table := range tables {
		path := tempFile(t, "sheet.png")
		writeSheet(t, path, 100, 100, table.transparent)

		r, err := newValidator(t, spec).Check(path)
		require.NoError(t, err)
		assert.Equal(t, table.want, r.String())
	}
}

func TestCheckJustUnderThresholdDefault(t *testing.T) {
	// 2621 of 262144 pixels is 0.99983%, which still rounds to 1.00%
	path := tempFile(t, "sheet.png")
	writeSheet(t, path, 1024, 256, 2621)

	r, err := newValidator(t, sheet.Default()).Check(path)
	require.NoError(t, err)
	assert.Equal(t, "FAIL no real transparency (alpha0=1.00%)", r.String())
}

func TestCheckCorrupt(t *testing.T) {
	path := tempFile(t, "sheet.png")
	require.NoError(t, os.WriteFile(path, []byte("\x89PNG\r\n\x1a\nnope"), 0644))

	_, err := newValidator(t, sheet.Default()).Check(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestCheckDirectory(t *testing.T) {
	_, err := newValidator(t, sheet.Default()).Check(t.TempDir())
	assert.Error(t, err)
}

func TestCheckDebugDiagnostics(t *testing.T) {
	path := tempFile(t, "sheet.png")
	writeSheet(t, path, 1024, 256, 1024*16)

	core, logs := observer.New(zapcore.DebugLevel)
	v, err := New(sheet.Default(), zap.New(core))
	require.NoError(t, err)

	_, err = v.Check(path)
	require.NoError(t, err)

	flat := logs.FilterMessage("sheet has a single visible color")
	assert.Equal(t, 1, flat.Len())

	checked := logs.FilterMessage("checked sheet").All()
	require.Len(t, checked, 1)

	fields := checked[0].ContextMap()
	assert.Equal(t, "png", fields["format"])
	assert.Equal(t, "OK", fields["status"])
	assert.Equal(t, int64(1024*16), fields["transparent"])
	assert.Equal(t, int64(1), fields["colors"])
	assert.Len(t, fields["crc"], 8)
}

func TestCheckInfoSkipsPalette(t *testing.T) {
	path := tempFile(t, "sheet.png")
	writeSheet(t, path, 1024, 256, 0)

	core, logs := observer.New(zapcore.InfoLevel)
	v, err := New(sheet.Default(), zap.New(core))
	require.NoError(t, err)

	_, err = v.Check(path)
	require.NoError(t, err)
	assert.Equal(t, 0, logs.Len())
}
