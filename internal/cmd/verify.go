package cmd

import (
	"context"
	"io"

	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/labcheck/labcheck/internal/config"
	"github.com/labcheck/labcheck/internal/core"
	"github.com/labcheck/labcheck/internal/core/checker"
	"github.com/labcheck/labcheck/internal/core/engine"
	errwrap "github.com/labcheck/labcheck/internal/errors"
	"github.com/labcheck/labcheck/internal/observability"
	"github.com/labcheck/labcheck/internal/output"
)

// verification is one fully wired run: manifest, checkers and reporter.
type verification struct {
	manifest *core.Manifest
	runner   *engine.Runner
	reporter *output.Reporter
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(settings)
	if err != nil {
		ExitWithCode(observability.CLILogger, foundry.ExitConfigInvalid, "Invalid configuration",
			errwrap.WrapConfigInvalid("", err, "invalid configuration"))
		return nil
	}
	if noColor {
		cfg.Color = false
	}

	observability.CLILogger.Debug("Configuration loaded",
		zap.String("python", cfg.Python),
		zap.String("pqc_provider", cfg.PQC.Provider),
		zap.Duration("probe_timeout", cfg.Probe.Timeout),
		zap.Bool("color", cfg.Color))

	vf, err := newVerification(cfg, cmd.OutOrStdout())
	if err != nil {
		ExitWithCode(observability.CLILogger, foundry.ExitFailure, "Failed to prepare checks",
			errwrap.WrapInternal("", err, "manifest unavailable"))
		return nil
	}

	run, err := vf.runner.Run(cmd.Context(), vf.manifest)
	if err != nil {
		return errwrap.WrapInternal("", err, "verification run failed")
	}
	logRun(run)

	if err := vf.reporter.Err(); err != nil {
		return errwrap.WrapOutput(run.ID, err, "failed to write report")
	}
	// Pass or fail, the report is informational; the exit code stays 0.
	return nil
}

// newVerification wires checkers for cfg and a reporter writing to out.
func newVerification(cfg *config.Config, out io.Writer) (*verification, error) {
	manifest, err := core.DefaultManifest()
	if err != nil {
		return nil, err
	}

	interp := &checker.Interpreter{Command: cfg.Python, Timeout: cfg.Probe.Timeout}

	registry := newProbeRegistry(interp, manifest)

	pq := &checker.PostQuantumChecker{Lister: interp, Provider: manifest.PostQuantum.Name}
	if cfg.PQC.Provider == config.ProviderCIRCL {
		pq = &checker.PostQuantumChecker{Lister: checker.CIRCL{}, Provider: checker.CIRCLProviderName}
	}

	reporter := output.NewReporter(out, output.Options{
		Color:            cfg.Color,
		Title:            cfg.Report.Title,
		Submission:       cfg.Report.Submission,
		SetupScript:      cfg.Report.SetupScript,
		PostQuantumLabel: pq.Provider,
	})

	runner := engine.NewRunner(reporter,
		checker.NewBinaryChecker(),
		&checker.LibraryChecker{Registry: registry},
		pq,
	)
	runner.Host = func(ctx context.Context) core.HostInfo {
		return core.CollectHostInfo(ctx, interp.Version)
	}

	return &verification{manifest: manifest, runner: runner, reporter: reporter}, nil
}

// newProbeRegistry registers the interpreter probe for every manifest library;
// other modules fall back to the same import probe.
func newProbeRegistry(interp *checker.Interpreter, manifest *core.Manifest) *checker.Registry {
	registry := checker.NewRegistry(interp.Import)
	for _, lib := range manifest.Libraries {
		registry.Register(lib.LookupName(), interp.Import)
	}
	return registry
}

func logRun(run *engine.Run) {
	logger := observability.CLILogger
	if logger == nil || run == nil {
		return
	}
	for _, result := range run.Results {
		logger.Debug("Check resolved",
			zap.String("run_id", run.ID),
			zap.String("check_id", result.CheckID),
			zap.String("kind", string(result.Kind)),
			zap.String("name", result.Name),
			zap.String("lookup", result.Lookup),
			zap.String("outcome", string(result.Outcome)),
			zap.String("detail", result.Detail))
	}
	logger.Debug("Verification finished",
		zap.String("run_id", run.ID),
		zap.Int("score", run.Tally.Score),
		zap.Int("total", run.Tally.Total),
		zap.Bool("ready", run.Tally.Ready()),
		zap.Duration("elapsed", run.FinishedAt.Sub(run.StartedAt)))
}
