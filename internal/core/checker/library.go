package checker

import (
	"context"
	"fmt"
	"strings"

	"github.com/labcheck/labcheck/internal/core"
)

// UnknownVersion is reported for modules that load but expose no version.
const UnknownVersion = "Unknown"

// LibraryChecker verifies that a library module can be loaded.
type LibraryChecker struct {
	Registry *Registry
}

func (c *LibraryChecker) Kind() core.CheckKind {
	return core.CheckKindLibrary
}

// Check runs the registered probe for the target's module name.
func (c *LibraryChecker) Check(ctx context.Context, target core.Target) (*core.CheckResult, error) {
	module := strings.TrimSpace(target.LookupName())
	if module == "" {
		return nil, fmt.Errorf("library module name is required")
	}
	if c.Registry == nil {
		return nil, fmt.Errorf("library probe registry not configured")
	}

	result := &core.CheckResult{
		Kind:   core.CheckKindLibrary,
		Name:   target.Name,
		Lookup: module,
	}

	probe, err := c.Registry.Probe(module)
	if err != nil {
		result.Outcome = core.OutcomeBroken
		result.Detail = err.Error()
		return result, nil
	}

	version, err := probe(ctx, module)
	switch {
	case err == nil:
		result.Outcome = core.OutcomePresent
		result.Version = strings.TrimSpace(version)
		if result.Version == "" {
			result.Version = UnknownVersion
		}
	case IsNotFound(err):
		result.Outcome = core.OutcomeMissing
	default:
		result.Outcome = core.OutcomeBroken
		result.Detail = err.Error()
	}
	return result, nil
}
