package config

import "time"

// PQC provider names.
const (
	ProviderLibOQS = "liboqs"
	ProviderCIRCL  = "circl"
)

// Config represents the complete application configuration. Values come from
// built-in defaults overridden by LABCHECK_* environment variables and flags;
// there is no config file.
type Config struct {
	// Color enables ANSI styling of the report. NO_COLOR forces it off.
	Color bool `mapstructure:"color"`

	// Python is the interpreter used for library probes.
	Python string `mapstructure:"python"`

	Probe   ProbeConfig   `mapstructure:"probe"`
	PQC     PQCConfig     `mapstructure:"pqc"`
	Report  ReportConfig  `mapstructure:"report"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ProbeConfig bounds each library probe.
type ProbeConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// PQCConfig selects the post-quantum backend.
type PQCConfig struct {
	// Provider is "liboqs" (Python oqs binding) or "circl" (linked in).
	Provider string `mapstructure:"provider"`
}

// ReportConfig contains the wording of the report banner and summary.
type ReportConfig struct {
	Title       string `mapstructure:"title"`
	Submission  string `mapstructure:"submission"`
	SetupScript string `mapstructure:"setup_script"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	// Level controls the minimum log level
	// Valid values: trace, debug, info, warn, error
	Level string `mapstructure:"level"`
}
