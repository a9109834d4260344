package checker

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func requirePython(t *testing.T) *Interpreter {
	t.Helper()
	if _, err := exec.LookPath(DefaultPython); err != nil {
		t.Skip("python3 not available on PATH")
	}
	return &Interpreter{Command: DefaultPython, Timeout: 30 * time.Second}
}

// writeModules writes Python sources into a temp dir and puts it on PYTHONPATH.
func writeModules(t *testing.T, modules map[string]string) {
	t.Helper()
	dir := t.TempDir()
	for name, src := range modules {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+".py"), []byte(src), 0o600))
	}
	t.Setenv("PYTHONPATH", dir)
}

func TestInterpreterMechanismsFromFixture(t *testing.T) {
	interp := requirePython(t)
	writeModules(t, map[string]string{
		"fakeoqs": "__version__ = \"0.10.1\"\n\n" +
			"def get_enabled_sig_mechanisms():\n" +
			"    return [\"ML-DSA-44\", \"ML-DSA-65\", \"Falcon-512\"]\n",
	})

	mechanisms, err := interp.SignatureMechanisms(context.Background(), "fakeoqs")
	require.NoError(t, err)
	require.Equal(t, []string{"ML-DSA-44", "ML-DSA-65", "Falcon-512"}, mechanisms)

	version, err := interp.Import(context.Background(), "fakeoqs")
	require.NoError(t, err)
	require.Equal(t, "0.10.1", version)
}

func TestInterpreterImportBrokenDependency(t *testing.T) {
	interp := requirePython(t)
	writeModules(t, map[string]string{
		"brokenlib": "import labcheck_missing_dependency\n",
	})

	_, err := interp.Import(context.Background(), "brokenlib")
	require.Error(t, err)
	require.False(t, IsNotFound(err), "a missing transitive dependency is a load failure")

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	require.Contains(t, loadErr.Message, "labcheck_missing_dependency")
}

func TestInterpreterImportIgnoresModuleOutput(t *testing.T) {
	interp := requirePython(t)
	writeModules(t, map[string]string{
		"noisy": "print(\"loading noisy\")\n__version__ = \"1.2\"\n",
	})

	version, err := interp.Import(context.Background(), "noisy")
	require.NoError(t, err)
	require.Equal(t, "1.2", version)
}

func TestInterpreterImportTimeout(t *testing.T) {
	interp := requirePython(t)
	interp.Timeout = 200 * time.Millisecond
	writeModules(t, map[string]string{
		"slowlib": "import time\ntime.sleep(5)\n",
	})

	_, err := interp.Import(context.Background(), "slowlib")
	require.Error(t, err)
	require.False(t, IsNotFound(err))
	require.Contains(t, err.Error(), "timed out after 200ms")
}

func TestInterpreterVersion(t *testing.T) {
	interp := requirePython(t)

	version, err := interp.Version(context.Background())
	require.NoError(t, err)
	require.Regexp(t, `^3\.\d+`, version)
}

func TestInterpreterImportWithoutVersionAttribute(t *testing.T) {
	interp := requirePython(t)

	version, err := interp.Import(context.Background(), "sys")
	require.NoError(t, err)
	require.Equal(t, UnknownVersion, version)
}

func TestInterpreterImportMissingModule(t *testing.T) {
	interp := requirePython(t)

	_, err := interp.Import(context.Background(), "labcheck_no_such_module")
	require.Error(t, err)
	require.True(t, IsNotFound(err))
}

func TestInterpreterMechanismsMissingModule(t *testing.T) {
	interp := requirePython(t)

	_, err := interp.SignatureMechanisms(context.Background(), "labcheck_no_such_module")
	require.Error(t, err)
	require.True(t, IsNotFound(err))
}

func TestInterpreterMechanismsRuntimeFailure(t *testing.T) {
	interp := requirePython(t)

	// sys imports fine but has no get_enabled_sig_mechanisms.
	_, err := interp.SignatureMechanisms(context.Background(), "sys")
	require.Error(t, err)
	require.False(t, IsNotFound(err))

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	require.Contains(t, loadErr.Message, "get_enabled_sig_mechanisms")
}

func TestInterpreterMissingCommand(t *testing.T) {
	interp := &Interpreter{Command: "labcheck-no-such-python"}

	_, err := interp.Import(context.Background(), "json")
	require.Error(t, err)
	require.False(t, IsNotFound(err))
	require.Contains(t, err.Error(), "labcheck-no-such-python not found")

	_, err = interp.Version(context.Background())
	require.Error(t, err)
}

func TestParseReport(t *testing.T) {
	report, err := parseReport([]byte("warning: noisy import\n{\"status\": \"ok\", \"version\": \"2.2.1\"}\n\n"))
	require.NoError(t, err)
	require.Equal(t, "ok", report.Status)
	require.Equal(t, "2.2.1", report.Version)

	_, err = parseReport([]byte("  \n"))
	require.Error(t, err)

	_, err = parseReport([]byte("not json"))
	require.Error(t, err)
}
