package checker

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/labcheck/labcheck/internal/core"
)

type stubLister struct {
	mechanisms []string
	err        error
	seen       []string
}

func (s *stubLister) SignatureMechanisms(ctx context.Context, module string) ([]string, error) {
	s.seen = append(s.seen, module)
	return s.mechanisms, s.err
}

var oqsTarget = core.Target{Name: "LibOQS", Lookup: "oqs"}

func TestPostQuantumCheckerSuccess(t *testing.T) {
	lister := &stubLister{mechanisms: []string{"ML-DSA-44", "ML-DSA-65", "Falcon-512"}}
	checker := &PostQuantumChecker{Lister: lister}

	result, err := checker.Check(context.Background(), oqsTarget)
	require.NoError(t, err)
	require.Equal(t, core.OutcomePresent, result.Outcome)
	require.Len(t, result.Mechanisms, 3)
	require.Equal(t, "LibOQS", result.Provider)
	require.Equal(t, []string{"oqs"}, lister.seen)
}

func TestPostQuantumCheckerImportFailure(t *testing.T) {
	checker := &PostQuantumChecker{Lister: &stubLister{err: fmt.Errorf("%w: No module named 'oqs'", ErrNotFound)}}

	result, err := checker.Check(context.Background(), oqsTarget)
	require.NoError(t, err)
	require.Equal(t, core.OutcomeMissing, result.Outcome)
	require.Empty(t, result.Detail)
}

func TestPostQuantumCheckerRuntimeFailure(t *testing.T) {
	checker := &PostQuantumChecker{
		Lister:   &stubLister{err: &LoadError{Module: "oqs", Message: "liboqs.so not found"}},
		Provider: "LibOQS",
	}

	result, err := checker.Check(context.Background(), oqsTarget)
	require.NoError(t, err)
	require.Equal(t, core.OutcomeBroken, result.Outcome)
	require.Equal(t, "liboqs.so not found", result.Detail)
}

func TestPostQuantumCheckerRequiresLister(t *testing.T) {
	_, err := (&PostQuantumChecker{}).Check(context.Background(), oqsTarget)
	require.Error(t, err)
}

func TestCIRCLSignatureMechanisms(t *testing.T) {
	mechanisms, err := CIRCL{}.SignatureMechanisms(context.Background(), "oqs")
	require.NoError(t, err)
	require.NotEmpty(t, mechanisms)
	require.NotContains(t, mechanisms, "Ed25519")
	require.NotContains(t, mechanisms, "Ed448")

	checker := &PostQuantumChecker{Lister: CIRCL{}, Provider: CIRCLProviderName}
	result, err := checker.Check(context.Background(), oqsTarget)
	require.NoError(t, err)
	require.Equal(t, core.OutcomePresent, result.Outcome)
	require.Equal(t, len(mechanisms), len(result.Mechanisms))
	require.Equal(t, CIRCLProviderName, result.Provider)
}
