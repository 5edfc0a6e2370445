package errors

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"
	"time"
)

func TestErrorString(t *testing.T) {
	err := &Error{
		Op:   "theme.Load",
		Kind: KindConfig,
		Err:  stderrors.New("bad margin"),
	}
	want := "theme.Load [config]: bad margin"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorWithWidget(t *testing.T) {
	err := &Error{
		Op:     "widgets.Grid.UpdateLayout",
		Kind:   KindRender,
		Widget: "*widgets.Grid",
		Err:    stderrors.New("boom"),
	}
	if got := err.Error(); !strings.Contains(got, "widget=*widgets.Grid") {
		t.Errorf("error string %q should contain widget name", got)
	}
}

func TestErrorUnwrap(t *testing.T) {
	inner := stderrors.New("inner")
	err := &Error{Op: "op", Err: inner}
	if !stderrors.Is(err, inner) {
		t.Error("errors.Is should find the wrapped error")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindContract, "contract"},
		{KindConfig, "config"},
		{KindRender, "render"},
		{KindPanic, "panic"},
		{KindFrame, "frame"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "test panic", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}

	err = &PanicError{Op: "frame.Driver.Run", Value: "test panic"}
	if got, want := err.Error(), "panic in frame.Driver.Run: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *Error
	restore := installHandler(&testHandler{onError: func(err *Error) { captured = err }})
	defer restore()

	Report(&Error{Op: "test.op", Kind: KindFrame, Err: stderrors.New("x")})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	restore := installHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	defer restore()

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", captured.Value, "intentional test panic")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
}

func TestAssertPanicsWithContractError(t *testing.T) {
	var reported *ContractError
	restore := installHandler(&testHandler{onContract: func(err *ContractError) { reported = err }})
	defer restore()

	defer func() {
		r := recover()
		err, ok := r.(*ContractError)
		if !ok {
			t.Fatalf("recovered %T, want *ContractError", r)
		}
		if err.Op != "geometry.Align" {
			t.Errorf("Op = %q, want geometry.Align", err.Op)
		}
		if err.Message != "alignment 7 out of range" {
			t.Errorf("Message = %q", err.Message)
		}
		if reported != err {
			t.Error("handler should see the same violation that is raised")
		}
	}()
	Assert(false, "geometry.Align", "alignment %d out of range", 7)
	t.Fatal("Assert(false) returned")
}

func TestAssertTrueIsSilent(t *testing.T) {
	called := false
	restore := installHandler(&testHandler{onContract: func(*ContractError) { called = true }})
	defer restore()

	Assert(true, "op", "never")
	if called {
		t.Error("handler called for a satisfied assertion")
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := NewLogHandler(&buf)

	h.HandleError(&Error{Op: "theme.Load", Kind: KindConfig, Err: stderrors.New("bad"), StackTrace: "frames"})
	if out := buf.String(); !strings.Contains(out, "strata: ") || !strings.Contains(out, "error: theme.Load [config]: bad") {
		t.Errorf("error output = %q", out)
	}
	if strings.Contains(buf.String(), "frames") {
		t.Error("stack printed without Verbose")
	}

	buf.Reset()
	h.Verbose = true
	h.HandlePanic(&PanicError{Op: "frame.Driver.Step", Value: "boom", StackTrace: "frames"})
	if out := buf.String(); !strings.Contains(out, "panic in frame.Driver.Step: boom") || !strings.Contains(out, "frames") {
		t.Errorf("panic output = %q", out)
	}

	buf.Reset()
	h.Verbose = false
	h.HandleContractViolation(&ContractError{Op: "op", Message: "broken", StackTrace: "frames"})
	if out := buf.String(); !strings.Contains(out, "contract violation in op: broken") || !strings.Contains(out, "frames") {
		t.Errorf("contract output = %q", out)
	}
}

func TestSetHandlerNil(t *testing.T) {
	old := getHandler()
	defer SetHandler(old)

	SetHandler(nil)
	if _, ok := getHandler().(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", getHandler())
	}
}

func installHandler(h Handler) func() {
	old := getHandler()
	SetHandler(h)
	return func() { SetHandler(old) }
}

type testHandler struct {
	onError    func(*Error)
	onPanic    func(*PanicError)
	onContract func(*ContractError)
}

func (h *testHandler) HandleError(err *Error) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}

func (h *testHandler) HandleContractViolation(err *ContractError) {
	if h.onContract != nil {
		h.onContract(err)
	}
}
