package checker

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Probe loads the named module and returns its version. It returns an error
// wrapping ErrNotFound when the module is absent and a *LoadError when the
// module exists but fails to load.
type Probe func(ctx context.Context, module string) (string, error)

// Registry maps logical library names to the probes that verify them.
// Probes are registered at build time; modules without a dedicated probe
// use the fallback.
type Registry struct {
	probes   map[string]Probe
	fallback Probe
}

// NewRegistry creates a registry with an optional fallback probe.
func NewRegistry(fallback Probe) *Registry {
	return &Registry{
		probes:   make(map[string]Probe),
		fallback: fallback,
	}
}

// Register binds a probe to a module name, replacing any previous binding.
func (r *Registry) Register(module string, probe Probe) {
	key := normalizeModule(module)
	if key == "" || probe == nil {
		return
	}
	r.probes[key] = probe
}

// Probe returns the probe for module, falling back to the default probe.
func (r *Registry) Probe(module string) (Probe, error) {
	key := normalizeModule(module)

	if probe, ok := r.probes[key]; ok {
		return probe, nil
	}
	if r.fallback != nil {
		return r.fallback, nil
	}
	return nil, fmt.Errorf("no probe registered for %q", module)
}

// Modules lists explicitly registered module names.
func (r *Registry) Modules() []string {
	names := make([]string, 0, len(r.probes))
	for name := range r.probes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizeModule(module string) string {
	return strings.TrimSpace(module)
}
