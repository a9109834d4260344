package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fulmenhq/gofulmen/errors"
	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/fulmenhq/gofulmen/logging"
	"go.uber.org/zap"

	errwrap "github.com/labcheck/labcheck/internal/errors"
)

// ExitWithCode logs err with foundry exit code metadata and exits. A nil
// logger falls back to stderr. Non-envelope errors are normalized first.
func ExitWithCode(logger *logging.Logger, exitCode foundry.ExitCode, msg string, err error) {
	var envelope *errors.ErrorEnvelope
	if err != nil {
		envelope = errwrap.EnsureEnvelope(err)
	}

	info, ok := foundry.GetExitCodeInfo(exitCode)
	if !ok {
		writeFatal(os.Stderr, msg, envelope)
		fmt.Fprintf(os.Stderr, "Exit Code: %d\n", exitCode)
		os.Exit(int(exitCode))
	}

	if logger == nil {
		writeFatal(os.Stderr, msg, envelope)
		fmt.Fprintf(os.Stderr, "Exit Code: %d (%s) - %s\n", info.Code, info.Name, info.Description)
		os.Exit(info.Code)
	}

	logger.Error(msg, exitFields(info.Code, info.Name, info.Category, envelope)...)
	os.Exit(info.Code)
}

// ExitWithCodeStderr is used for failures before the logger exists.
func ExitWithCodeStderr(exitCode foundry.ExitCode, msg string, err error) {
	ExitWithCode(nil, exitCode, msg, err)
}

func exitFields(code int, name, category string, envelope *errors.ErrorEnvelope) []zap.Field {
	fields := []zap.Field{
		zap.Int("exit_code", code),
		zap.String("exit_name", name),
		zap.String("exit_category", category),
	}
	if envelope == nil {
		return fields
	}
	fields = append(fields,
		zap.String("error_code", envelope.Code),
		zap.String("error_message", envelope.Message),
		zap.String("correlation_id", envelope.CorrelationID),
	)
	if envelope.Context != nil {
		fields = append(fields, zap.Any("error_context", envelope.Context))
	}
	return fields
}

func writeFatal(w io.Writer, msg string, envelope *errors.ErrorEnvelope) {
	if envelope == nil {
		fmt.Fprintf(w, "FATAL: %s\n", msg)
		return
	}
	detail := envelope.Message
	if wrapped, ok := envelope.Context["wrapped_error"]; ok {
		detail = fmt.Sprintf("%s: %v", detail, wrapped)
	}
	fmt.Fprintf(w, "FATAL: %s [%s]: %s (correlation: %s)\n", msg, envelope.Code, detail, envelope.CorrelationID)
}
