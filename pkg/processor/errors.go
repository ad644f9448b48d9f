package processor

import (
	"fmt"
)

// ToolError is returned when an external tool ran but exited non-zero.
// It preserves the tool's own diagnostic output so operators can tell a
// misbehaving tool apart from plumbing errors.
type ToolError struct {
	Tool     string
	ExitCode int
	Stderr   string
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s failed with exit code %d. Stderr: %s", e.Tool, e.ExitCode, e.Stderr)
}
