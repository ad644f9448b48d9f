package api

import (
	"github.com/voidshard/rasterflow/internal/core"
	"github.com/voidshard/rasterflow/pkg/processor"
	"github.com/voidshard/rasterflow/pkg/registry"
	"github.com/voidshard/rasterflow/pkg/structs"
)

// New builds the service with the in-memory registry. Job state lives and
// dies with the process.
func New(tools processor.Toolkit, opts *structs.Options) (API, error) {
	return core.NewService(registry.NewMemory(), tools, opts)
}

// NewWithRegistry builds the service against a caller-supplied registry.
func NewWithRegistry(reg registry.Registry, tools processor.Toolkit, opts *structs.Options) (API, error) {
	return core.NewService(reg, tools, opts)
}
