package processor

import (
	"context"

	"github.com/voidshard/rasterflow/pkg/structs"
)

// The orchestration core treats geospatial work as opaque operations with
// known inputs, outputs and failure signals. These interfaces are what it
// knows; the default implementation shells out to the GDAL tools.

// Validator decides whether a file on disk is a readable raster.
type Validator interface {
	// Probe attempts to open the file as a raster. A non-nil error means
	// the file is corrupt, the wrong format or otherwise unusable - every
	// internal collaborator failure is normalized into an error, never a
	// panic.
	Probe(ctx context.Context, path string) error
}

// Reprojector warps a raster into a target coordinate reference system.
type Reprojector interface {
	Reproject(ctx context.Context, src, dst, targetCRS string) error
}

// Translator converts a raster into a byte-depth, value-scaled form that
// the tile generator accepts uniformly, whatever the source pixel format
// (floating point, multi-band, etc).
type Translator interface {
	Translate(ctx context.Context, src, dst string) error
}

// Inspector reads a raster's metadata back from disk.
type Inspector interface {
	Inspect(ctx context.Context, path string) (*structs.Metadata, error)
}

// ZoomRange bounds a tile pyramid.
type ZoomRange struct {
	Min int
	Max int
}

// TileGenerator renders a zoom/x/y.png pyramid for src under outDir.
// This is the slowest, most failure-prone operation; implementations must
// surface the underlying tool's diagnostic output on failure (see
// ToolError) and keep their internal parallelism to processes.
type TileGenerator interface {
	Generate(ctx context.Context, src, outDir string, zoom ZoomRange, processes int) error
}

// Toolkit bundles every operation the pipeline needs.
type Toolkit interface {
	Validator
	Reprojector
	Translator
	Inspector
	TileGenerator
}
