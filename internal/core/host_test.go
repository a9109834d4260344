package core

import (
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollectHostInfo(t *testing.T) {
	info := CollectHostInfo(context.Background(), func(ctx context.Context) (string, error) {
		return " 3.12.3\n", nil
	})
	require.Equal(t, runtime.Version(), info.GoVersion)
	require.Equal(t, "3.12.3", info.PythonVersion)
	require.NotEmpty(t, info.OS)
}

func TestCollectHostInfoWithoutPython(t *testing.T) {
	info := CollectHostInfo(context.Background(), func(ctx context.Context) (string, error) {
		return "", errors.New("interpreter python3 not found on PATH")
	})
	require.Equal(t, NotFound, info.PythonVersion)

	info = CollectHostInfo(context.Background(), nil)
	require.Equal(t, NotFound, info.PythonVersion)
}
