package checker

import (
	"context"
	"fmt"
	"strings"

	"github.com/labcheck/labcheck/internal/core"
)

// MechanismLister loads a post-quantum library and enumerates the signature
// mechanisms it has enabled.
type MechanismLister interface {
	SignatureMechanisms(ctx context.Context, module string) ([]string, error)
}

// PostQuantumChecker verifies that a post-quantum library loads and that its
// native primitives answer an enumeration call.
type PostQuantumChecker struct {
	Lister MechanismLister
	// Provider is the display name of the backend; defaults to the target name.
	Provider string
}

func (c *PostQuantumChecker) Kind() core.CheckKind {
	return core.CheckKindPostQuantum
}

// Check counts as a single check regardless of how many mechanisms are enabled.
func (c *PostQuantumChecker) Check(ctx context.Context, target core.Target) (*core.CheckResult, error) {
	module := strings.TrimSpace(target.LookupName())
	if module == "" {
		return nil, fmt.Errorf("post-quantum module name is required")
	}
	if c.Lister == nil {
		return nil, fmt.Errorf("post-quantum provider not configured")
	}

	provider := strings.TrimSpace(c.Provider)
	if provider == "" {
		provider = target.Name
	}

	result := &core.CheckResult{
		Kind:     core.CheckKindPostQuantum,
		Name:     target.Name,
		Lookup:   module,
		Provider: provider,
	}

	mechanisms, err := c.Lister.SignatureMechanisms(ctx, module)
	switch {
	case err == nil:
		result.Outcome = core.OutcomePresent
		result.Mechanisms = mechanisms
	case IsNotFound(err):
		result.Outcome = core.OutcomeMissing
	default:
		result.Outcome = core.OutcomeBroken
		result.Detail = err.Error()
	}
	return result, nil
}
