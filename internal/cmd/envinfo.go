package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/labcheck/labcheck/internal/config"
	"github.com/labcheck/labcheck/internal/core"
	"github.com/labcheck/labcheck/internal/core/checker"
	errwrap "github.com/labcheck/labcheck/internal/errors"
	"github.com/labcheck/labcheck/internal/observability"
)

var envInfoCmd = &cobra.Command{
	Use:   "envinfo",
	Short: "Display environment information",
	Long:  "Display host, interpreter, configuration and target information used by the checks.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(settings)
		if err != nil {
			ExitWithCode(observability.CLILogger, foundry.ExitConfigInvalid, "Invalid configuration",
				errwrap.WrapConfigInvalid("", err, "invalid configuration"))
			return
		}

		manifest, err := core.DefaultManifest()
		if err != nil {
			observability.CLILogger.Warn("Manifest unavailable", zap.Error(err))
			return
		}

		interp := &checker.Interpreter{Command: cfg.Python, Timeout: cfg.Probe.Timeout}
		info := core.CollectHostInfo(cmd.Context(), interp.Version)
		writeEnvInfo(cmd.OutOrStdout(), info, cfg, manifest, newProbeRegistry(interp, manifest))
	},
}

func writeEnvInfo(w io.Writer, info core.HostInfo, cfg *config.Config, manifest *core.Manifest, registry *checker.Registry) {
	fmt.Fprintln(w, "=== labcheck Environment Information ===")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Application:")
	fmt.Fprintf(w, "  Version:    %s\n", versionInfo.Version)
	fmt.Fprintf(w, "  Commit:     %s\n", versionInfo.Commit)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Host:")
	fmt.Fprintf(w, "  Hostname:   %s\n", info.Hostname)
	fmt.Fprintf(w, "  OS:         %s %s\n", info.OS, info.Release)
	fmt.Fprintf(w, "  Go Version: %s\n", info.GoVersion)
	fmt.Fprintf(w, "  Python:     %s (%s)\n", info.PythonVersion, cfg.Python)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Configuration:")
	fmt.Fprintf(w, "  Color:          %t\n", cfg.Color)
	fmt.Fprintf(w, "  Probe Timeout:  %s\n", cfg.Probe.Timeout)
	fmt.Fprintf(w, "  PQC Provider:   %s\n", cfg.PQC.Provider)
	fmt.Fprintf(w, "  Setup Script:   %s\n", cfg.Report.SetupScript)
	fmt.Fprintln(w)

	binaries := make([]string, 0, len(manifest.Binaries))
	for _, b := range manifest.Binaries {
		binaries = append(binaries, b.LookupName())
	}
	libraries := make([]string, 0, len(manifest.Libraries))
	for _, l := range manifest.Libraries {
		libraries = append(libraries, fmt.Sprintf("%s (%s)", l.Name, l.LookupName()))
	}

	fmt.Fprintln(w, "Targets:")
	fmt.Fprintf(w, "  Binaries:     %s\n", strings.Join(binaries, ", "))
	fmt.Fprintf(w, "  Libraries:    %s\n", strings.Join(libraries, ", "))
	fmt.Fprintf(w, "  Post-Quantum: %s (%s)\n", manifest.PostQuantum.Name, manifest.PostQuantum.LookupName())
	if registry != nil {
		fmt.Fprintf(w, "  Probes:       %s\n", strings.Join(registry.Modules(), ", "))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "=== End Environment Information ===")
}

func init() {
	rootCmd.AddCommand(envInfoCmd)
}
