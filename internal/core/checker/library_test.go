package checker

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/labcheck/labcheck/internal/core"
)

func TestLibraryCheckerOutcomes(t *testing.T) {
	registry := NewRegistry(func(ctx context.Context, module string) (string, error) {
		return "", fmt.Errorf("%w: no module named %s", ErrNotFound, module)
	})
	registry.Register("cryptography", func(ctx context.Context, module string) (string, error) {
		return "42.0.5", nil
	})
	registry.Register("jupyter_core", func(ctx context.Context, module string) (string, error) {
		return "", nil
	})
	registry.Register("scapy", func(ctx context.Context, module string) (string, error) {
		return "", &LoadError{Module: module, Message: "libpcap.so: cannot open shared object file"}
	})

	checker := &LibraryChecker{Registry: registry}

	cases := []struct {
		target  core.Target
		outcome core.Outcome
		version string
		detail  string
	}{
		{core.Target{Name: "cryptography", Lookup: "cryptography"}, core.OutcomePresent, "42.0.5", ""},
		{core.Target{Name: "jupyter", Lookup: "jupyter_core"}, core.OutcomePresent, UnknownVersion, ""},
		{core.Target{Name: "scapy"}, core.OutcomeBroken, "", "libpcap.so: cannot open shared object file"},
		{core.Target{Name: "pandas"}, core.OutcomeMissing, "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.target.Name, func(t *testing.T) {
			result, err := checker.Check(context.Background(), tc.target)
			require.NoError(t, err)
			require.Equal(t, tc.outcome, result.Outcome)
			require.Equal(t, tc.version, result.Version)
			require.Equal(t, tc.detail, result.Detail)
			require.Equal(t, tc.target.Name, result.Name)
		})
	}
}

func TestLibraryCheckerWithoutProbeIsBroken(t *testing.T) {
	checker := &LibraryChecker{Registry: NewRegistry(nil)}

	result, err := checker.Check(context.Background(), core.Target{Name: "pandas"})
	require.NoError(t, err)
	require.Equal(t, core.OutcomeBroken, result.Outcome)
	require.Contains(t, result.Detail, "no probe registered")
}

func TestLibraryCheckerRequiresRegistry(t *testing.T) {
	_, err := (&LibraryChecker{}).Check(context.Background(), core.Target{Name: "pandas"})
	require.Error(t, err)
}

func TestRegistryModules(t *testing.T) {
	registry := NewRegistry(nil)
	probe := func(ctx context.Context, module string) (string, error) { return "1", nil }
	registry.Register(" pandas ", probe)
	registry.Register("Crypto", probe)
	registry.Register("", probe)
	registry.Register("scapy", nil)

	require.Equal(t, []string{"Crypto", "pandas"}, registry.Modules())

	_, err := registry.Probe("pandas")
	require.NoError(t, err)
	_, err = registry.Probe("scapy")
	require.Error(t, err)
}
