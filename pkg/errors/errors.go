package errors

import (
	"fmt"
)

var (
	ErrNotFound      = fmt.Errorf("not found")
	ErrAlreadyExists = fmt.Errorf("already exists")
	ErrInvalidRaster = fmt.Errorf("invalid raster file provided")
	ErrInvalidState  = fmt.Errorf("invalid state")
	ErrInvalidArg    = fmt.Errorf("invalid arg")
)
