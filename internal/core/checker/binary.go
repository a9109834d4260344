package checker

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/labcheck/labcheck/internal/core"
)

// PathLookup resolves a command name on the executable search path.
type PathLookup func(file string) (string, error)

// BinaryChecker verifies that a command is available on PATH.
type BinaryChecker struct {
	LookPath PathLookup
}

// NewBinaryChecker returns a checker backed by exec.LookPath.
func NewBinaryChecker() *BinaryChecker {
	return &BinaryChecker{LookPath: exec.LookPath}
}

func (c *BinaryChecker) Kind() core.CheckKind {
	return core.CheckKindBinary
}

// Check resolves the target's lookup name. Any lookup failure counts as missing.
func (c *BinaryChecker) Check(ctx context.Context, target core.Target) (*core.CheckResult, error) {
	name := strings.TrimSpace(target.LookupName())
	if name == "" {
		return nil, fmt.Errorf("binary name is required")
	}

	lookPath := c.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	result := &core.CheckResult{
		Kind:    core.CheckKindBinary,
		Name:    target.Name,
		Lookup:  name,
		Outcome: core.OutcomeMissing,
	}

	path, err := lookPath(name)
	if err == nil && path != "" {
		result.Outcome = core.OutcomePresent
		result.Path = path
	}
	return result, nil
}
