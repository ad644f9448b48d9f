package structs

import (
	"io"
)

// UploadFile is a single file within an upload request.
type UploadFile struct {
	Filename string
	Data     io.Reader
}

// JobStatus is the acknowledgement / polling view of a job.
type JobStatus struct {
	RasterID string `json:"raster_id"`
	Status   Status `json:"status"`
	Message  string `json:"message,omitempty"`
	Filename string `json:"filename,omitempty"`
}

// RasterMetadata is the metadata view of a completed job.
type RasterMetadata struct {
	Metadata `json:",inline"`

	RasterID string `json:"raster_id"`
}

// FailedUpload reports one rejected file within a batch.
type FailedUpload struct {
	Filename string `json:"filename"`
	Error    string `json:"error"`
}

// BatchResponse partitions a batch upload by per-item outcome.
// One file's rejection never rolls back the others.
type BatchResponse struct {
	SuccessfulJobs []*JobStatus    `json:"successful_jobs"`
	FailedUploads  []*FailedUpload `json:"failed_uploads"`
}
