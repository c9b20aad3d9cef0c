// Package errors provides structured error reporting for the vault gateways.
//
// Failures that a gateway handles locally, such as an alert that could not be
// presented or a settings deep link that failed, are not returned to the
// caller. They are reported here with a [Kind] naming the subsystem they came
// from, and the installed [ErrorHandler] decides what to do with them.
package errors

import (
	"fmt"
	"time"
)

// Kind identifies the subsystem an error originated from.
type Kind int

const (
	// KindUnknown indicates an error of unknown origin.
	KindUnknown Kind = iota
	// KindPlatform indicates a platform channel or native bridge error.
	KindPlatform
	// KindParsing indicates a malformed payload from native code.
	KindParsing
	// KindPlugin indicates a native plugin call failed (diagnostic, settings).
	KindPlugin
	// KindAlert indicates the alert dialog subsystem failed.
	KindAlert
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k Kind) String() string {
	switch k {
	case KindPlatform:
		return "platform"
	case KindParsing:
		return "parsing"
	case KindPlugin:
		return "plugin"
	case KindAlert:
		return "alert"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// VaultError is a reported failure with its origin.
type VaultError struct {
	// Op is the operation that failed (e.g., "permissions.switchToSettings").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
	// Channel is the platform channel name, if applicable.
	Channel string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *VaultError) Error() string {
	if e.Channel != "" {
		return fmt.Sprintf("%s [%s] channel=%s: %v", e.Op, e.Kind, e.Channel, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *VaultError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked.
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ParseError represents a native payload that did not have the expected shape.
type ParseError struct {
	// Channel is the platform channel that produced the payload.
	Channel string
	// DataType is the expected type name.
	DataType string
	// Got is the actual data received.
	Got any
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s from channel %s: got %T", e.DataType, e.Channel, e.Got)
}

// ErrorHandler receives errors reported by the gateways.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *VaultError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
