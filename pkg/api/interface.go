package api

import (
	"io"

	"github.com/voidshard/rasterflow/pkg/structs"
)

// API represents the functions RasterFlow servers should expose.
type API interface {
	// Implemented in rasterflow/internal/core.Service

	Upload(filename string, data io.Reader) (*structs.JobStatus, error)
	UploadBatch(files []*structs.UploadFile) (*structs.BatchResponse, error)

	Status(id string) (*structs.JobStatus, error)
	Metadata(id string) (*structs.RasterMetadata, error)

	// Download & Tile return paths to files on local disk; the transport
	// layer decides how to stream them out.
	Download(id string) (string, error)
	Tile(id string, z, x, y int) (string, error)

	Close() error
}

type Server interface {
	ServeForever(api API) error
	Close() error
}
