package structs

import (
	"time"
)

// Options passed to the RasterFlow service on creation.
type Options struct {
	// DataDir is the root under which raw uploads and processed outputs live.
	DataDir string

	// TargetCRS is the coordinate reference system every upload is warped to.
	TargetCRS string

	// PipelineRoutines caps how many job pipelines may run at once.
	// Each running pipeline may spawn external tool subprocesses, so this
	// also bounds subprocess concurrency.
	PipelineRoutines int64

	// TileProcesses is the tiling tool's internal parallelism (per job).
	TileProcesses int

	// ZoomMin / ZoomMax bound the generated tile pyramid.
	ZoomMin int
	ZoomMax int

	// TileTimeout is an optional cap on the tiling stage, the slowest and
	// most failure-prone part of the pipeline. Zero disables it.
	TileTimeout time.Duration
}
