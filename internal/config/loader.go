// Package config loads labcheck configuration from defaults and the
// environment using viper, decoding into typed structs with mapstructure.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. LABCHECK_PQC_PROVIDER.
const EnvPrefix = "LABCHECK"

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("color", true)
	v.SetDefault("python", "python3")

	v.SetDefault("probe.timeout", "20s")

	v.SetDefault("pqc.provider", ProviderLibOQS)

	v.SetDefault("report.title", "CSC 4575: Environment Verification Tool")
	v.SetDefault("report.submission", "Lab 0")
	v.SetDefault("report.setup_script", "./setup_vm.sh")

	v.SetDefault("logging.level", "info")
}

// Bind configures v to read LABCHECK_* environment variables.
func Bind(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// New returns a viper instance with defaults and environment binding applied.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	Bind(v)
	return v
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = New()
	}

	cfg := &Config{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(v.AllSettings()); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if _, set := os.LookupEnv("NO_COLOR"); set {
		cfg.Color = false
	}

	cfg.Python = strings.TrimSpace(cfg.Python)
	cfg.PQC.Provider = strings.ToLower(strings.TrimSpace(cfg.PQC.Provider))

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func Validate(cfg *Config) error {
	if cfg.Python == "" {
		return fmt.Errorf("python interpreter must not be empty")
	}
	if cfg.Probe.Timeout <= 0 {
		return fmt.Errorf("probe.timeout must be positive, got %s", cfg.Probe.Timeout)
	}
	if cfg.Probe.Timeout > 10*time.Minute {
		return fmt.Errorf("probe.timeout must not exceed 10m, got %s", cfg.Probe.Timeout)
	}
	switch cfg.PQC.Provider {
	case ProviderLibOQS, ProviderCIRCL:
	default:
		return fmt.Errorf("unsupported pqc.provider %q (want %s or %s)", cfg.PQC.Provider, ProviderLibOQS, ProviderCIRCL)
	}
	return nil
}
