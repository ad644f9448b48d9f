package structs

// Metadata describes a reprojected raster as read back from disk.
type Metadata struct {
	// CRS is the coordinate reference system identifier, eg. "EPSG:4326".
	CRS string `json:"crs"`

	// Bounds is the spatial extent: min-x, min-y, max-x, max-y.
	Bounds [4]float64 `json:"bounds"`

	// Resolution is the pixel size along x & y.
	Resolution [2]float64 `json:"resolution"`

	BandCount int `json:"band_count"`
	Width     int `json:"width"`
	Height    int `json:"height"`
}

// Artifacts are the on-disk outputs of a completed pipeline run.
type Artifacts struct {
	// Reprojected is the path of the warped output file.
	Reprojected string `json:"reprojected"`

	// TileDir is the root of the zoom/x/y.png tile pyramid.
	TileDir string `json:"tile_dir"`
}
