// Package errors provides structured error handling for the strata engine.
//
// Recoverable failures (loading a theme, writing a frame) are reported as
// *Error values. Broken structural invariants inside the widget tree are
// contract violations: Assert reports a *ContractError and then panics with
// it, because continuing would leave the tree in an undefined visual state.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindContract indicates a violated precondition inside the engine.
	KindContract
	// KindConfig indicates an invalid theme or configuration value.
	KindConfig
	// KindRender indicates a rendering backend error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindFrame indicates a failure in the frame driver.
	KindFrame
)

func (k ErrorKind) String() string {
	switch k {
	case KindContract:
		return "contract"
	case KindConfig:
		return "config"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	case KindFrame:
		return "frame"
	default:
		return "unknown"
	}
}

// Error represents a structured error reported by the engine.
type Error struct {
	// Op is the operation that failed (e.g., "theme.Load").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Widget is the type name of the widget involved, if any.
	Widget string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("%s [%s] widget=%s: %v", e.Op, e.Kind, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "frame.Driver.Run").
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

// Unwrap returns the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// ContractError describes a violated precondition. It is the panic value
// raised by Assert.
type ContractError struct {
	// Op is the operation whose precondition failed.
	Op string
	// Message describes the violated condition.
	Message string
	// StackTrace contains the call stack at the time of the violation.
	StackTrace string
	// Timestamp is when the violation was detected.
	Timestamp time.Time
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("contract violation in %s: %s", e.Op, e.Message)
}

// Handler receives errors reported by the engine.
type Handler interface {
	// HandleError is called when a recoverable error occurs.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleContractViolation is called right before Assert panics.
	HandleContractViolation(err *ContractError)
}
