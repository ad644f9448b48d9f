package server

import (
	"encoding/json"
	"errors"
	"net/http"

	ie "github.com/voidshard/rasterflow/pkg/errors"
)

var (
	errmap map[int][]error = map[int][]error{
		http.StatusBadRequest: []error{
			ie.ErrInvalidRaster,
			ie.ErrInvalidArg,
			ie.ErrInvalidState,
			ie.ErrAlreadyExists,
		},
		http.StatusNotFound: []error{
			ie.ErrNotFound,
		},
	}
)

// mapError returns the http status code for a given service error, or
// http.StatusInternalServerError if the error is not recognised.
func mapError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	for code, errs := range errmap {
		for _, e := range errs {
			if errors.Is(err, e) {
				return code
			}
		}
	}
	return http.StatusInternalServerError
}

// writeJson encodes obj with the given status code.
func writeJson(w http.ResponseWriter, code int, obj interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(obj); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
