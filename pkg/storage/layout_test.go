package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaths(t *testing.T) {
	l := NewLayout("data")

	cases := []struct {
		Name   string
		Given  string
		Expect string
	}{
		{"RawPath", l.RawPath("abc", "dem.tif"), filepath.Join("data", "raw", "abc_dem.tif")},
		{"RawPathStripsDirs", l.RawPath("abc", "../../etc/passwd"), filepath.Join("data", "raw", "abc_passwd")},
		{"Reprojected", l.ReprojectedPath("abc"), filepath.Join("data", "processed", "abc", "reprojected.tif")},
		{"TileSource", l.TileSourcePath("abc"), filepath.Join("data", "processed", "abc", "tile_source.tif")},
		{"TileDir", l.TileDir("abc"), filepath.Join("data", "processed", "abc", "tiles")},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			assert.Equal(t, c.Expect, c.Given)
		})
	}
}

func TestTilePath(t *testing.T) {
	assert.Equal(
		t,
		filepath.Join("data", "processed", "abc", "tiles", "8", "10", "42.png"),
		TilePath(NewLayout("data").TileDir("abc"), 8, 10, 42),
	)
}

func TestSaveRaw(t *testing.T) {
	l := NewLayout(t.TempDir())

	path, err := l.SaveRaw("abc", "dem.tif", bytes.NewBufferString("raster bytes"))
	assert.Nil(t, err)
	assert.Equal(t, l.RawPath("abc", "dem.tif"), path)

	data, err := os.ReadFile(path)
	assert.Nil(t, err)
	assert.Equal(t, "raster bytes", string(data))
}
