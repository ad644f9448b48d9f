package structs

// Job is one raster's submission-through-completion lifecycle.
//
// Metadata & Artifacts are set together when the pipeline finishes; a job
// that is processing or failed carries neither.
type Job struct {
	ID       string `json:"id"`
	Status   Status `json:"status"`
	Filename string `json:"filename,omitempty"`
	Message  string `json:"message,omitempty"`

	Metadata  *Metadata  `json:"metadata,omitempty"`
	Artifacts *Artifacts `json:"artifacts,omitempty"`

	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}

// Update is a partial set of Job fields, applied atomically by the registry.
// Zero-value fields are left untouched.
type Update struct {
	Status    Status
	Message   string
	Metadata  *Metadata
	Artifacts *Artifacts
}
