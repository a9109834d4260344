package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/labcheck/labcheck/internal/config"
	"github.com/labcheck/labcheck/internal/observability"
)

const binaryName = "labcheck"

var (
	verbose bool
	noColor bool

	// settings holds defaults, LABCHECK_* environment overrides and bound flags.
	settings = config.New()

	// Version info set by main package
	versionInfo struct {
		Version   string
		Commit    string
		BuildDate string
	}
)

// SetVersionInfo is called by main package to set version information
func SetVersionInfo(version, commit, buildDate string) {
	versionInfo.Version = version
	versionInfo.Commit = commit
	versionInfo.BuildDate = buildDate
}

// rootCmd runs the full verification when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   binaryName,
	Short: "Verify a lab workstation environment",
	Long: `labcheck verifies that the system binaries, Python libraries and the
post-quantum cryptography library required for the labs are installed, and
prints a pass/fail report. It never installs anything.

The report is informational: labcheck exits 0 whether or not every check passed.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runVerify,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (sets log level to debug)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().String("python", "", "python interpreter used for library probes (default python3)")
	rootCmd.PersistentFlags().String("pqc-provider", "", "post-quantum backend: liboqs or circl (default liboqs)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "per-probe timeout (default 20s)")

	// Flags override LABCHECK_* environment variables only when set.
	_ = settings.BindPFlag("python", rootCmd.PersistentFlags().Lookup("python"))
	_ = settings.BindPFlag("pqc.provider", rootCmd.PersistentFlags().Lookup("pqc-provider"))
	_ = settings.BindPFlag("probe.timeout", rootCmd.PersistentFlags().Lookup("timeout"))
}

// initLogging initializes the CLI logger before any command runs.
func initLogging() {
	observability.InitCLILogger(binaryName, settings.GetString("logging.level"), verbose)
	observability.CLILogger.Debug("CLI logger initialized", zap.Bool("verbose", verbose))
}
