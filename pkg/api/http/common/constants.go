package common

const (
	// API_RASTERS is used to upload a single raster
	API_RASTERS = "/v1/rasters"

	// API_RASTERS_BATCH is used to upload several rasters at once
	API_RASTERS_BATCH = "/v1/rasters/batch"

	// API_STATUS is used to poll a job's lifecycle state
	API_STATUS = "/v1/rasters/{id}/status"

	// API_METADATA is used to fetch a completed job's raster metadata
	API_METADATA = "/v1/rasters/{id}/metadata"

	// API_DOWNLOAD is used to stream a completed job's reprojected file
	API_DOWNLOAD = "/v1/rasters/{id}/download"

	// API_TILE is used to fetch one tile of a completed job's pyramid
	API_TILE = "/v1/rasters/{id}/tiles/{z:[0-9]+}/{x:[0-9]+}/{y:[0-9]+}.png"

	// FieldFile / FieldFiles are the multipart form fields uploads use
	FieldFile  = "file"
	FieldFiles = "files"
)
