package favicon

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	ico "github.com/sergeymakinen/go-ico"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportAll(t *testing.T) {
	dir := t.TempDir()

	written, err := ExportAll(dir)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "favicon.ico"),
		filepath.Join(dir, "favicon-16x16.png"),
		filepath.Join(dir, "favicon-32x32.png"),
		filepath.Join(dir, "apple-touch-icon.png"),
	}, written)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 4)
}

func TestWriteICOFrames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favicon.ico")
	require.NoError(t, WriteICO(path, ICOSizes))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	frames, err := ico.DecodeAll(f)
	require.NoError(t, err)
	require.Len(t, frames, len(ICOSizes))
	for i, size := range ICOSizes {
		assert.Equal(t, size, frames[i].Bounds().Dx(), "frame %d", i)
		assert.Equal(t, size, frames[i].Bounds().Dy(), "frame %d", i)
	}
}

func TestWritePNGDimensions(t *testing.T) {
	for _, tt := range []struct {
		name string
		size int
	}{
		{"favicon-16x16.png", 16},
		{"favicon-32x32.png", 32},
		{"apple-touch-icon.png", 180},
	} {
		path := filepath.Join(t.TempDir(), tt.name)
		require.NoError(t, WritePNG(path, tt.size))

		f, err := os.Open(path)
		require.NoError(t, err)
		config, err := png.DecodeConfig(f)
		f.Close()
		require.NoError(t, err)
		assert.Equal(t, tt.size, config.Width)
		assert.Equal(t, tt.size, config.Height)
	}
}
