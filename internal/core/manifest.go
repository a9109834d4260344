package core

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed manifest.yaml
var manifestYAML []byte

// Manifest is the ordered list of targets a run verifies.
type Manifest struct {
	Binaries    []Target `yaml:"binaries"`
	Libraries   []Target `yaml:"libraries"`
	PostQuantum Target   `yaml:"post_quantum"`
}

// Targets returns every target in run order with its kind set.
func (m *Manifest) Targets() []Target {
	targets := make([]Target, 0, len(m.Binaries)+len(m.Libraries)+1)
	for _, t := range m.Binaries {
		t.Kind = CheckKindBinary
		targets = append(targets, t)
	}
	for _, t := range m.Libraries {
		t.Kind = CheckKindLibrary
		targets = append(targets, t)
	}
	pq := m.PostQuantum
	pq.Kind = CheckKindPostQuantum
	return append(targets, pq)
}

// DefaultManifest parses the manifest compiled into the binary.
func DefaultManifest() (*Manifest, error) {
	return ParseManifest(manifestYAML)
}

// ParseManifest decodes and validates a manifest document.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	for i, t := range m.Binaries {
		if strings.TrimSpace(t.Name) == "" {
			return nil, fmt.Errorf("manifest binaries[%d]: name is required", i)
		}
	}
	for i, t := range m.Libraries {
		if strings.TrimSpace(t.Name) == "" {
			return nil, fmt.Errorf("manifest libraries[%d]: name is required", i)
		}
	}
	if strings.TrimSpace(m.PostQuantum.LookupName()) == "" {
		return nil, fmt.Errorf("manifest post_quantum: name or lookup is required")
	}

	return &m, nil
}
