package registry

import (
	"github.com/voidshard/rasterflow/pkg/structs"
)

// Registry is the single source of truth for job state.
//
// Implementations must be safe for concurrent submitters, pipeline runs and
// readers; a reader must never observe a partially applied update or a
// half-constructed record.
type Registry interface {
	// Create adds a new job record, which must arrive fully initialized.
	// Returns errors.ErrAlreadyExists if the id is taken - given how ids
	// are generated this should never happen, but it is checked.
	Create(job *structs.Job) error

	// Get returns the current record for the id, or errors.ErrNotFound.
	// It never blocks on in-flight updates beyond the registry's own
	// internal exclusion.
	Get(id string) (*structs.Job, error)

	// Update atomically merges the given fields into an existing record.
	// Returns errors.ErrNotFound if the id is absent and
	// errors.ErrInvalidState if the record already reached a final status;
	// complete & failed are terminal.
	Update(id string, up *structs.Update) error
}
