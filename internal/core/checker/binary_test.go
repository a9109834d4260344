package checker

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/labcheck/labcheck/internal/core"
)

func stubLookPath(paths map[string]string) PathLookup {
	return func(file string) (string, error) {
		if path, ok := paths[file]; ok {
			return path, nil
		}
		return "", &exec.Error{Name: file, Err: exec.ErrNotFound}
	}
}

func TestBinaryCheckerInstalled(t *testing.T) {
	checker := &BinaryChecker{LookPath: stubLookPath(map[string]string{"git": "/usr/bin/git"})}

	result, err := checker.Check(context.Background(), core.Target{Name: "git"})
	require.NoError(t, err)
	require.Equal(t, core.OutcomePresent, result.Outcome)
	require.Equal(t, "/usr/bin/git", result.Path)
	require.True(t, result.Passed())
}

func TestBinaryCheckerMissing(t *testing.T) {
	checker := &BinaryChecker{LookPath: stubLookPath(nil)}

	result, err := checker.Check(context.Background(), core.Target{Name: "nmap"})
	require.NoError(t, err)
	require.Equal(t, core.OutcomeMissing, result.Outcome)
	require.Empty(t, result.Path)
	require.False(t, result.Passed())
}

func TestBinaryCheckerLookupErrorIsMissing(t *testing.T) {
	checker := &BinaryChecker{LookPath: func(string) (string, error) {
		return "", errors.New("permission denied")
	}}

	result, err := checker.Check(context.Background(), core.Target{Name: "tcpdump"})
	require.NoError(t, err)
	require.Equal(t, core.OutcomeMissing, result.Outcome)
}

func TestBinaryCheckerRequiresName(t *testing.T) {
	_, err := NewBinaryChecker().Check(context.Background(), core.Target{Name: " "})
	require.Error(t, err)
}

func TestBinaryCheckerRealPathAbsent(t *testing.T) {
	result, err := NewBinaryChecker().Check(context.Background(), core.Target{Name: "labcheck-definitely-not-installed"})
	require.NoError(t, err)
	require.Equal(t, core.OutcomeMissing, result.Outcome)
}
