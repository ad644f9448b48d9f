package api

import (
	"github.com/voidshard/rasterflow/pkg/structs"
)

// OptionsServerDefault matches the original RasterFlow deployment: warp to
// WGS84, zoom levels 8-16, four tiler processes & four concurrent
// pipelines.
func OptionsServerDefault() *structs.Options {
	return &structs.Options{
		DataDir:          "data",
		TargetCRS:        "EPSG:4326",
		PipelineRoutines: 4,
		TileProcesses:    4,
		ZoomMin:          8,
		ZoomMax:          16,
	}
}
