package progression

import (
	"errors"
	"fmt"
)

// ErrBelowBar means the next work weight is lighter than the empty bar, so
// there is nothing to warm up with. A light squat before any squat success is one.
var ErrBelowBar = errors.New("work weight is below the empty bar")

// ConfigurationError is fatal: targets can't be computed for the affected exercise.
type ConfigurationError struct {
	Exercise Exercise
	Field    string
	Reason   string
}

func (e *ConfigurationError) Error() string {
	if e.Exercise == "" {
		return fmt.Sprintf("configuration: %s %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("configuration: %s %s %s", e.Exercise, e.Field, e.Reason)
}

// MalformedEntryError marks a single log entry as unusable. The entry is left out
// of every aggregation, the rest of the log is still processed.
type MalformedEntryError struct {
	Index    int
	Exercise Exercise
	Reason   string
}

func (e *MalformedEntryError) Error() string {
	return fmt.Sprintf("malformed entry #%d [%s]: %s", e.Index, e.Exercise, e.Reason)
}
