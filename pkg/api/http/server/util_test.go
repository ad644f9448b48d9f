package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	ie "github.com/voidshard/rasterflow/pkg/errors"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		Name   string
		Given  error
		Expect int
	}{
		{"Nil", nil, http.StatusOK},
		{"NotFound", ie.ErrNotFound, http.StatusNotFound},
		{"NotFoundWrapped", fmt.Errorf("%w job x", ie.ErrNotFound), http.StatusNotFound},
		{"InvalidRaster", fmt.Errorf("%w. Error: nope", ie.ErrInvalidRaster), http.StatusBadRequest},
		{"InvalidArg", ie.ErrInvalidArg, http.StatusBadRequest},
		{"InvalidState", ie.ErrInvalidState, http.StatusBadRequest},
		{"Unrecognised", fmt.Errorf("disk on fire"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			assert.Equal(t, c.Expect, mapError(c.Given))
		})
	}
}
