package errors

import (
	"io"
	"log"
)

// LogHandler writes reports through a standard logger.
type LogHandler struct {
	// Verbose adds stack traces to errors and panics. Contract violations
	// always carry theirs.
	Verbose bool

	logger *log.Logger
}

// NewLogHandler returns a LogHandler writing to w.
func NewLogHandler(w io.Writer) *LogHandler {
	return &LogHandler{logger: log.New(w, "strata: ", log.LstdFlags)}
}

func (h *LogHandler) printf(format string, args ...any) {
	if h.logger == nil {
		log.Printf(format, args...)
		return
	}
	h.logger.Printf(format, args...)
}

func (h *LogHandler) stack(trace string) {
	if trace != "" {
		h.printf("stack:\n%s", trace)
	}
}

// HandleError logs err on one line.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	h.printf("error: %v", err)
	if h.Verbose {
		h.stack(err.StackTrace)
	}
}

// HandlePanic logs a recovered panic.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	h.printf("%v", err)
	if h.Verbose {
		h.stack(err.StackTrace)
	}
}

// HandleContractViolation logs the violation with its stack, since the
// caller is about to panic.
func (h *LogHandler) HandleContractViolation(err *ContractError) {
	if err == nil {
		return
	}
	h.printf("%v", err)
	h.stack(err.StackTrace)
}
