package core

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/voidshard/rasterflow/internal/utils"
	"github.com/voidshard/rasterflow/pkg/errors"
	"github.com/voidshard/rasterflow/pkg/processor"
	"github.com/voidshard/rasterflow/pkg/registry"
	"github.com/voidshard/rasterflow/pkg/storage"
	"github.com/voidshard/rasterflow/pkg/structs"
)

const (
	// defaults
	defDataDir          = "data"
	defTargetCRS        = "EPSG:4326" // WGS84
	defPipelineRoutines = 4
	defTileProcesses    = 4
	defZoomMin          = 8
	defZoomMax          = 16

	msgAccepted = "Upload accepted and validated."
	msgComplete = "Processing finished successfully."
)

type Service struct {
	reg   registry.Registry
	tools processor.Toolkit
	disk  *storage.Layout
	sched *scheduler
	opts  *structs.Options
}

func NewService(reg registry.Registry, tools processor.Toolkit, opts *structs.Options) (*Service, error) {
	if opts == nil {
		opts = &structs.Options{}
	}
	if opts.DataDir == "" {
		opts.DataDir = defDataDir
	}
	if opts.TargetCRS == "" {
		opts.TargetCRS = defTargetCRS
	}
	if opts.PipelineRoutines <= 0 {
		opts.PipelineRoutines = defPipelineRoutines
	}
	if opts.TileProcesses <= 0 {
		opts.TileProcesses = defTileProcesses
	}
	if opts.ZoomMin <= 0 {
		opts.ZoomMin = defZoomMin
	}
	if opts.ZoomMax <= 0 {
		opts.ZoomMax = defZoomMax
	}
	if opts.ZoomMax < opts.ZoomMin {
		return nil, fmt.Errorf("%w zoom range %d-%d", errors.ErrInvalidArg, opts.ZoomMin, opts.ZoomMax)
	}

	return &Service{
		reg:   reg,
		tools: tools,
		disk:  storage.NewLayout(opts.DataDir),
		sched: newScheduler(opts.PipelineRoutines),
		opts:  opts,
	}, nil
}

// Upload admits a single raster: persist the bytes, validate them, register
// the job & schedule its pipeline run. The returned acknowledgement is
// immediate; processing happens off the request path.
func (s *Service) Upload(filename string, data io.Reader) (*structs.JobStatus, error) {
	id := utils.NewRandomID()

	rawPath, err := s.disk.SaveRaw(id, filename, data)
	if err != nil {
		return nil, err
	}

	if err := s.tools.Probe(context.Background(), rawPath); err != nil {
		// rejected uploads leave no job record and no orphaned bytes
		if rmErr := os.Remove(rawPath); rmErr != nil {
			log.Println("[Service]", id, "could not remove rejected upload:", rmErr)
		}
		return nil, fmt.Errorf("%w. Error: %v", errors.ErrInvalidRaster, err)
	}

	err = s.reg.Create(&structs.Job{ID: id, Status: structs.PROCESSING, Filename: filename})
	if err != nil {
		return nil, err
	}

	// exactly one pipeline run is ever scheduled per id
	s.sched.Submit(func() { s.runPipeline(id, rawPath) })

	return &structs.JobStatus{
		RasterID: id,
		Status:   structs.PROCESSING,
		Message:  msgAccepted,
		Filename: filename,
	}, nil
}

// UploadBatch applies Upload to each file independently; one file's
// rejection never aborts or rolls back the others.
func (s *Service) UploadBatch(files []*structs.UploadFile) (*structs.BatchResponse, error) {
	resp := &structs.BatchResponse{
		SuccessfulJobs: []*structs.JobStatus{},
		FailedUploads:  []*structs.FailedUpload{},
	}
	for _, f := range files {
		ack, err := s.Upload(f.Filename, f.Data)
		if err != nil {
			resp.FailedUploads = append(resp.FailedUploads, &structs.FailedUpload{
				Filename: f.Filename,
				Error:    err.Error(),
			})
			continue
		}
		resp.SuccessfulJobs = append(resp.SuccessfulJobs, ack)
	}
	return resp, nil
}

// Status returns the polling view of a job.
func (s *Service) Status(id string) (*structs.JobStatus, error) {
	job, err := s.reg.Get(id)
	if err != nil {
		return nil, err
	}
	return &structs.JobStatus{
		RasterID: job.ID,
		Status:   job.Status,
		Message:  job.Message,
		Filename: job.Filename,
	}, nil
}

// Metadata returns raster metadata for completed jobs only.
func (s *Service) Metadata(id string) (*structs.RasterMetadata, error) {
	job, err := s.completed(id)
	if err != nil {
		return nil, err
	}
	return &structs.RasterMetadata{RasterID: job.ID, Metadata: *job.Metadata}, nil
}

// Download returns the path of the reprojected output for completed jobs.
func (s *Service) Download(id string) (string, error) {
	job, err := s.completed(id)
	if err != nil {
		return "", err
	}
	return job.Artifacts.Reprojected, nil
}

// Tile resolves one tile of a completed job's pyramid. Coordinates outside
// the generated zoom range or the raster's spatial extent were never
// rendered & so are not found.
func (s *Service) Tile(id string, z, x, y int) (string, error) {
	job, err := s.completed(id)
	if err != nil {
		return "", err
	}
	path := storage.TilePath(job.Artifacts.TileDir, z, x, y)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w tile %d/%d/%d", errors.ErrNotFound, z, x, y)
	}
	return path, nil
}

// Close waits for in-flight pipeline runs to finish.
func (s *Service) Close() error {
	s.sched.Wait()
	return nil
}

// completed returns the job only if it reached COMPLETE. In-progress,
// failed & unknown ids all read as not found here; callers poll Status to
// tell those cases apart.
func (s *Service) completed(id string) (*structs.Job, error) {
	job, err := s.reg.Get(id)
	if err != nil {
		return nil, err
	}
	if job.Status != structs.COMPLETE || job.Metadata == nil || job.Artifacts == nil {
		return nil, fmt.Errorf("%w job %s is not complete", errors.ErrNotFound, id)
	}
	return job, nil
}
