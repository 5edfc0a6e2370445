package errors_test

import (
	"strings"
	"testing"

	"github.com/go-strata/strata/pkg/errors"
)

func TestCaptureStackStartsAtCaller(t *testing.T) {
	stack := errors.CaptureStack()
	first, _, _ := strings.Cut(stack, "\n")
	if !strings.HasSuffix(first, "TestCaptureStackStartsAtCaller") {
		t.Errorf("first frame = %q, want the calling test", first)
	}
	if strings.Contains(stack, "errors.CaptureStack") || strings.Contains(stack, "\nruntime.") {
		t.Errorf("stack should hide runtime and errors frames, got:\n%s", stack)
	}
}

func TestViolationStackSkipsErrorsFrames(t *testing.T) {
	var got *errors.ContractError
	func() {
		prev := errors.DefaultHandler
		errors.SetHandler(discard{})
		defer errors.SetHandler(prev)
		defer func() { got, _ = recover().(*errors.ContractError) }()
		errors.Assert(false, "test.op", "broken")
	}()
	if got == nil {
		t.Fatal("Assert did not panic with a *ContractError")
	}
	first, _, _ := strings.Cut(got.StackTrace, "\n")
	if !strings.Contains(first, "TestViolationStackSkipsErrorsFrames") {
		t.Errorf("first frame = %q, want the asserting function", first)
	}
}

type discard struct{}

func (discard) HandleError(*errors.Error)                     {}
func (discard) HandlePanic(*errors.PanicError)                {}
func (discard) HandleContractViolation(*errors.ContractError) {}
