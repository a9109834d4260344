package core

import (
	"context"
	"os"
	"runtime"
	"strings"
)

// NotFound is displayed for values that could not be resolved.
const NotFound = "Not Found"

// HostInfo describes the machine a run executes on. Display only.
type HostInfo struct {
	Hostname      string
	OS            string
	Release       string
	GoVersion     string
	PythonVersion string
}

// VersionFunc reports the version of an external interpreter.
type VersionFunc func(ctx context.Context) (string, error)

// CollectHostInfo reads host details at call time. Lookup failures degrade
// to placeholder values; they never fail the run.
func CollectHostInfo(ctx context.Context, python VersionFunc) HostInfo {
	info := HostInfo{
		OS:            runtime.GOOS,
		GoVersion:     runtime.Version(),
		PythonVersion: NotFound,
	}

	if hostname, err := os.Hostname(); err == nil {
		info.Hostname = hostname
	}
	if sysname, release, ok := uname(); ok {
		info.OS = sysname
		info.Release = release
	}
	if python != nil {
		if version, err := python(ctx); err == nil && strings.TrimSpace(version) != "" {
			info.PythonVersion = strings.TrimSpace(version)
		}
	}
	return info
}
