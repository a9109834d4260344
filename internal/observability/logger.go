package observability

import (
	"fmt"
	"os"

	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/fulmenhq/gofulmen/logging"
)

// CLILogger is used for CLI diagnostics (SIMPLE profile). It writes to stderr
// so the report on stdout stays clean.
var CLILogger *logging.Logger

// InitCLILogger initializes the CLI logger. verbose forces DEBUG regardless
// of level.
func InitCLILogger(serviceName string, level string, verbose bool) {
	logger, err := NewCLILogger(serviceName, level, verbose)
	if err != nil {
		exitWithCodeStderr(foundry.ExitConfigInvalid, "Failed to initialize CLI logger", err)
	}
	CLILogger = logger
}

// NewCLILogger builds a SIMPLE-profile console logger on stderr.
func NewCLILogger(serviceName string, level string, verbose bool) (*logging.Logger, error) {
	defaultLevel := parseLogLevel(level)
	if verbose {
		defaultLevel = "DEBUG"
	}

	config := &logging.LoggerConfig{
		Profile:      logging.ProfileSimple,
		DefaultLevel: defaultLevel,
		Service:      serviceName,
		Environment:  "cli",
		Sinks: []logging.SinkConfig{
			{
				Type:   "console",
				Format: "console",
				Console: &logging.ConsoleSinkConfig{
					Stream:   "stderr",
					Colorize: false,
				},
			},
		},
	}
	return logging.New(config)
}

// parseLogLevel converts string log level to logging severity string
func parseLogLevel(levelStr string) string {
	switch levelStr {
	case "trace":
		return "TRACE"
	case "debug":
		return "DEBUG"
	case "info":
		return "INFO"
	case "warn", "warning":
		return "WARN"
	case "error":
		return "ERROR"
	default:
		return "INFO"
	}
}

// exitWithCodeStderr is used before any logger exists.
func exitWithCodeStderr(exitCode foundry.ExitCode, msg string, err error) {
	code := int(exitCode)
	if info, ok := foundry.GetExitCodeInfo(exitCode); ok {
		code = info.Code
		fmt.Fprintf(os.Stderr, "FATAL: %s: %v\nExit Code: %d (%s) - %s\n", msg, err, info.Code, info.Name, info.Description)
	} else {
		fmt.Fprintf(os.Stderr, "FATAL: %s: %v (exit code: %d)\n", msg, err, exitCode)
	}
	os.Exit(code)
}
