package structs

import (
	"strings"
)

type Status string

const (
	// transient states
	PROCESSING Status = "processing"

	// end states
	COMPLETE Status = "complete"
	FAILED   Status = "failed"
)

func IsFinalStatus(status Status) bool {
	switch status {
	case COMPLETE, FAILED:
		return true
	default:
		return false
	}
}

func ToStatus(s string) Status {
	switch strings.ToLower(s) {
	case "processing":
		return PROCESSING
	case "complete":
		return COMPLETE
	case "failed":
		return FAILED
	default:
		return ""
	}
}
