package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// Layout maps job identifiers to on-disk locations. Every path is
// namespaced by job id so concurrent jobs never collide.
//
// <root>/raw/<id>_<filename>                 raw upload, pre-validation
// <root>/processed/<id>/reprojected.tif      warped output
// <root>/processed/<id>/tile_source.tif      byte-scaled tiling input
// <root>/processed/<id>/tiles/<z>/<x>/<y>.png
type Layout struct {
	root string
}

func NewLayout(root string) *Layout {
	return &Layout{root: root}
}

func (l *Layout) RawDir() string {
	return filepath.Join(l.root, "raw")
}

// RawPath is where an upload is persisted before validation. The original
// filename is kept in the name for traceability; only its base is used so
// uploads cannot escape the raw dir.
func (l *Layout) RawPath(id, filename string) string {
	return filepath.Join(l.RawDir(), fmt.Sprintf("%s_%s", id, filepath.Base(filename)))
}

func (l *Layout) ProcessedDir(id string) string {
	return filepath.Join(l.root, "processed", id)
}

func (l *Layout) ReprojectedPath(id string) string {
	return filepath.Join(l.ProcessedDir(id), "reprojected.tif")
}

func (l *Layout) TileSourcePath(id string) string {
	return filepath.Join(l.ProcessedDir(id), "tile_source.tif")
}

func (l *Layout) TileDir(id string) string {
	return filepath.Join(l.ProcessedDir(id), "tiles")
}

// SaveRaw persists an upload to its raw path, creating dirs as needed.
// On a partial write the file is removed; we never leave half an upload
// lying around.
func (l *Layout) SaveRaw(id, filename string, data io.Reader) (string, error) {
	if err := os.MkdirAll(l.RawDir(), 0750); err != nil {
		return "", err
	}

	path := l.RawPath(id, filename)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	_, err = io.Copy(f, data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

// TilePath resolves one tile beneath a pyramid root.
func TilePath(tileDir string, z, x, y int) string {
	return filepath.Join(tileDir, strconv.Itoa(z), strconv.Itoa(x), strconv.Itoa(y)+".png")
}
