package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement describes an external binary the build may call.
type Requirement struct {
	Name        string
	Command     string
	Description string
}

// Status reports the availability of one requirement.
type Status struct {
	Requirement
	Available bool
	Detail    string
}

// Check resolves each requirement on PATH and reports availability.
func Check(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		status := Status{Requirement: req}
		status.Command = strings.TrimSpace(req.Command)
		if status.Command == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if resolved, err := exec.LookPath(status.Command); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", status.Command)
		} else {
			status.Available = true
			status.Command = resolved
		}
		results = append(results, status)
	}
	return results
}

// FirstAvailable returns the first available status, preserving requirement
// order, or false when none resolve.
func FirstAvailable(statuses []Status) (Status, bool) {
	for _, status := range statuses {
		if status.Available {
			return status, true
		}
	}
	return Status{}, false
}
