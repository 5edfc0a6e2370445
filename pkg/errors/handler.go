package errors

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	// DefaultHandler receives every report. It logs to stderr unless
	// replaced with SetHandler.
	DefaultHandler Handler = NewLogHandler(os.Stderr)

	handlerMu sync.RWMutex
)

// SetHandler replaces the global handler. Nil restores a stderr LogHandler.
func SetHandler(h Handler) {
	if h == nil {
		h = NewLogHandler(os.Stderr)
	}
	handlerMu.Lock()
	DefaultHandler = h
	handlerMu.Unlock()
}

func getHandler() Handler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report hands err to the global handler, stamping it when Timestamp is
// unset.
func Report(err *Error) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	getHandler().HandleError(err)
}

// ReportPanic hands a recovered panic to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	getHandler().HandlePanic(err)
}

// Assert raises a contract violation when cond is false.
func Assert(cond bool, op, format string, args ...any) {
	if !cond {
		Violation(op, format, args...)
	}
}

// Violation reports a *ContractError and panics with it. Switch defaults
// over closed enums call it directly.
func Violation(op, format string, args ...any) {
	err := &ContractError{
		Op:         op,
		Message:    fmt.Sprintf(format, args...),
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	}
	getHandler().HandleContractViolation(err)
	panic(err)
}

// Recover reports a panic in the deferring function and swallows it.
//
//	defer errors.Recover("window.Frame")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(newPanicError(op, r))
	}
}

// RecoverWithCallback is Recover followed by callback(r), so the caller can
// turn the panic into a returned error. It must be deferred directly.
func RecoverWithCallback(op string, callback func(r any)) {
	if r := recover(); r != nil {
		ReportPanic(newPanicError(op, r))
		if callback != nil {
			callback(r)
		}
	}
}

func newPanicError(op string, r any) *PanicError {
	return &PanicError{
		Op:         op,
		Value:      r,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	}
}

// CaptureStack formats the caller's stack, one "function\n\tfile:line"
// entry per frame. Frames inside package runtime and this package are
// omitted.
func CaptureStack() string {
	var pcs [48]uintptr
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	var sb strings.Builder
	for {
		f, more := frames.Next()
		if f.Function != "" && !hiddenFrame(f.Function) {
			sb.WriteString(f.Function)
			sb.WriteString("\n\t")
			sb.WriteString(f.File)
			sb.WriteByte(':')
			sb.WriteString(strconv.Itoa(f.Line))
			sb.WriteByte('\n')
		}
		if !more {
			break
		}
	}
	return sb.String()
}

func hiddenFrame(fn string) bool {
	return strings.HasPrefix(fn, "runtime.") ||
		strings.HasPrefix(fn, "github.com/go-strata/strata/pkg/errors.")
}
