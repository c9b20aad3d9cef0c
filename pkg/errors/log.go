package errors

import (
	"github.com/go-drift/vault/pkg/log"
)

// LogHandler is an ErrorHandler that writes reports to the structured logger.
type LogHandler struct {
	// Verbose attaches stack traces to each entry.
	Verbose bool
}

// HandleError logs a VaultError at error level.
func (h *LogHandler) HandleError(err *VaultError) {
	if err == nil {
		return
	}
	l := log.WithComponent("errors")
	ev := l.Error().
		Err(err.Err).
		Str(log.FieldOp, err.Op).
		Str(log.FieldKind, err.Kind.String()).
		Time("at", err.Timestamp)
	if err.Channel != "" {
		ev = ev.Str(log.FieldChannel, err.Channel)
	}
	if h.Verbose && err.StackTrace != "" {
		ev = ev.Str("stack", err.StackTrace)
	}
	ev.Msg("vault error")
}

// HandlePanic logs a PanicError at error level.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	l := log.WithComponent("errors")
	ev := l.Error().
		Interface("value", err.Value).
		Str(log.FieldKind, KindPanic.String())
	if err.Op != "" {
		ev = ev.Str(log.FieldOp, err.Op)
	}
	if h.Verbose && err.StackTrace != "" {
		ev = ev.Str("stack", err.StackTrace)
	}
	ev.Msg("vault panic")
}
