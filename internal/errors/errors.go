package errors

import (
	"github.com/fulmenhq/gofulmen/errors"
	"github.com/google/uuid"
)

// Error codes used by labcheck.
const (
	CodeConfigInvalid = "CONFIG_INVALID"
	CodeInternal      = "INTERNAL_ERROR"
	CodeOutput        = "OUTPUT_ERROR"
)

// WrapConfigInvalid wraps a configuration failure for the given run.
func WrapConfigInvalid(runID string, err error, message string) *errors.ErrorEnvelope {
	return wrap(CodeConfigInvalid, runID, err, message)
}

// WrapInternal wraps an unexpected failure for the given run.
func WrapInternal(runID string, err error, message string) *errors.ErrorEnvelope {
	return wrap(CodeInternal, runID, err, message)
}

// WrapOutput wraps a failure to write the report.
func WrapOutput(runID string, err error, message string) *errors.ErrorEnvelope {
	return wrap(CodeOutput, runID, err, message)
}

func wrap(code, runID string, err error, message string) *errors.ErrorEnvelope {
	envelope := errors.NewErrorEnvelope(code, message)
	envelope = envelope.WithCorrelationID(correlationID(runID))
	envelope = withWrappedError(envelope, err)
	if updated, sevErr := envelope.WithSeverity(errors.SeverityHigh); sevErr == nil {
		envelope = updated
	}
	return envelope
}

// correlationID uses the run ID when there is one.
func correlationID(runID string) string {
	if runID != "" {
		return runID
	}
	return uuid.New().String()
}

// EnsureEnvelope normalizes any error into a gofulmen ErrorEnvelope.
func EnsureEnvelope(err error) *errors.ErrorEnvelope {
	if err == nil {
		env := errors.NewErrorEnvelope(CodeInternal, "unexpected nil error")
		env, _ = env.WithSeverity(errors.SeverityCritical)
		return env
	}

	if envelope, ok := err.(*errors.ErrorEnvelope); ok && envelope != nil {
		return envelope
	}

	return WrapInternal("", err, "unexpected error")
}

func withWrappedError(envelope *errors.ErrorEnvelope, err error) *errors.ErrorEnvelope {
	if envelope == nil || err == nil {
		return envelope
	}

	updated, updateErr := envelope.WithContext(map[string]interface{}{
		"wrapped_error": err.Error(),
	})
	if updateErr != nil {
		return envelope
	}
	return updated
}
