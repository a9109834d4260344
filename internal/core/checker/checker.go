package checker

import (
	"context"
	"errors"

	"github.com/labcheck/labcheck/internal/core"
)

// ErrNotFound marks a target that is absent, as opposed to present but broken.
var ErrNotFound = errors.New("not found")

// Checker is the interface all environment checkers implement.
type Checker interface {
	// Check verifies a single target. Absence and load failures are reported
	// in the result; an error means the target itself could not be checked.
	Check(ctx context.Context, target core.Target) (*core.CheckResult, error)

	// Kind returns the kind of target this checker handles.
	Kind() core.CheckKind
}

// LoadError reports a target that was found but failed while loading or running.
type LoadError struct {
	Module  string
	Message string
}

func (e *LoadError) Error() string {
	return e.Message
}

// IsNotFound reports whether err denotes absence.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
