package checker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultPython is the interpreter used when none is configured.
const DefaultPython = "python3"

// importScript imports argv[1] and prints a one-line JSON report. A module is
// missing only when the module itself cannot be found; an ImportError raised
// from inside it (for example a broken native extension) is reported as broken.
const importScript = `
import json, sys
name = sys.argv[1]
try:
    module = __import__(name)
except ImportError as exc:
    status = "missing" if getattr(exc, "name", None) == name else "broken"
    print(json.dumps({"status": status, "error": str(exc)}))
except BaseException as exc:
    print(json.dumps({"status": "broken", "error": str(exc)}))
else:
    print(json.dumps({"status": "ok", "version": str(getattr(module, "__version__", "Unknown"))}))
`

// mechanismScript imports argv[1] and enumerates its enabled signature mechanisms.
const mechanismScript = `
import json, sys
name = sys.argv[1]
try:
    module = __import__(name)
except ImportError as exc:
    status = "missing" if getattr(exc, "name", None) == name else "broken"
    print(json.dumps({"status": status, "error": str(exc)}))
    sys.exit(0)
except BaseException as exc:
    print(json.dumps({"status": "broken", "error": str(exc)}))
    sys.exit(0)
try:
    mechanisms = [str(m) for m in module.get_enabled_sig_mechanisms()]
except BaseException as exc:
    print(json.dumps({"status": "broken", "error": str(exc)}))
else:
    print(json.dumps({"status": "ok", "version": str(getattr(module, "__version__", "Unknown")), "mechanisms": mechanisms}))
`

// Interpreter probes Python modules by running the configured interpreter.
type Interpreter struct {
	// Command is the interpreter name or path.
	Command string
	// Timeout bounds each interpreter invocation; zero means no limit.
	Timeout time.Duration
	// LookPath resolves Command; defaults to exec.LookPath.
	LookPath PathLookup
}

type probeReport struct {
	Status     string   `json:"status"`
	Version    string   `json:"version,omitempty"`
	Error      string   `json:"error,omitempty"`
	Mechanisms []string `json:"mechanisms,omitempty"`
}

// Version returns the interpreter's version string.
func (i *Interpreter) Version(ctx context.Context) (string, error) {
	out, err := i.run(ctx, "-c", "import sys; print(sys.version.split()[0])")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// Import loads module in the interpreter and returns its version. It
// satisfies Probe.
func (i *Interpreter) Import(ctx context.Context, module string) (string, error) {
	report, err := i.report(ctx, importScript, module)
	if err != nil {
		return "", err
	}
	return report.Version, nil
}

// SignatureMechanisms imports module and lists its enabled signature mechanisms.
func (i *Interpreter) SignatureMechanisms(ctx context.Context, module string) ([]string, error) {
	report, err := i.report(ctx, mechanismScript, module)
	if err != nil {
		return nil, err
	}
	if report.Mechanisms == nil {
		return []string{}, nil
	}
	return report.Mechanisms, nil
}

func (i *Interpreter) report(ctx context.Context, script, module string) (*probeReport, error) {
	out, err := i.run(ctx, "-c", script, module)
	if err != nil {
		return nil, &LoadError{Module: module, Message: err.Error()}
	}

	report, err := parseReport(out)
	if err != nil {
		return nil, &LoadError{Module: module, Message: err.Error()}
	}

	switch report.Status {
	case "ok":
		return report, nil
	case "missing":
		return nil, fmt.Errorf("%w: %s", ErrNotFound, report.Error)
	default:
		return nil, &LoadError{Module: module, Message: report.Error}
	}
}

func (i *Interpreter) run(ctx context.Context, args ...string) ([]byte, error) {
	command := strings.TrimSpace(i.Command)
	if command == "" {
		command = DefaultPython
	}

	lookPath := i.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	path, err := lookPath(command)
	if err != nil {
		return nil, fmt.Errorf("interpreter %s not found on PATH", command)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	if i.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, i.Timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, args...) // #nosec G204 -- interpreter path is operator-configured
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("interpreter timed out after %s", i.Timeout)
		}
		if msg := lastLine(stderr.String()); msg != "" {
			return nil, fmt.Errorf("interpreter failed: %s", msg)
		}
		return nil, fmt.Errorf("interpreter failed: %w", err)
	}
	return stdout.Bytes(), nil
}

// parseReport decodes the last non-empty line of output; modules may print
// their own output while importing.
func parseReport(out []byte) (*probeReport, error) {
	line := lastLine(string(out))
	if line == "" {
		return nil, fmt.Errorf("interpreter produced no report")
	}
	var report probeReport
	if err := json.Unmarshal([]byte(line), &report); err != nil {
		return nil, fmt.Errorf("decode interpreter report: %w", err)
	}
	return &report, nil
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for idx := len(lines) - 1; idx >= 0; idx-- {
		if line := strings.TrimSpace(lines[idx]); line != "" {
			return line
		}
	}
	return ""
}
