package treelock

import (
	"sync"
	"testing"
	"time"

	"github.com/go-strata/strata/pkg/errors"
)

func TestAcquireRelease(t *testing.T) {
	l := New()
	tok := l.Acquire()
	if tok.Depth() != 1 {
		t.Fatalf("Depth = %d, want 1", tok.Depth())
	}
	if !tok.Holds(l) {
		t.Fatal("token should hold its lock")
	}
	tok.Release()
	if tok.Depth() != 0 {
		t.Errorf("Depth after Release = %d, want 0", tok.Depth())
	}
	if tok.Holds(l) {
		t.Error("released token still holds the lock")
	}
}

func TestEnterExitTracksDepth(t *testing.T) {
	l := New()
	tok := l.Acquire()
	tok.Enter().Enter()
	if tok.Depth() != 3 {
		t.Fatalf("Depth = %d, want 3", tok.Depth())
	}
	tok.Exit()
	tok.Exit()
	if tok.Depth() != 1 || !tok.Holds(l) {
		t.Fatalf("Depth = %d after two exits, want 1 and still held", tok.Depth())
	}
	tok.Exit()
	if tok.Holds(l) {
		t.Error("outermost Exit should release the lock")
	}

	// The lock is free again.
	l.Do(func(*Token) {})
}

func TestDoReleasesOnPanic(t *testing.T) {
	l := New()
	func() {
		defer func() { _ = recover() }()
		l.Do(func(*Token) { panic("boom") })
	}()

	done := make(chan struct{})
	go func() {
		l.Do(func(*Token) {})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock still held after panic inside Do")
	}
}

func TestLockSerializes(t *testing.T) {
	l := New()
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				l.Do(func(tok *Token) {
					tok.MustHold("test")
					counter++
				})
			}
		}()
	}
	wg.Wait()
	if counter != 800 {
		t.Errorf("counter = %d, want 800", counter)
	}
}

func TestMustHoldViolations(t *testing.T) {
	errors.SetHandler(quietHandler{})
	defer errors.SetHandler(nil)

	l := New()
	stale := l.Acquire()
	stale.Release()

	tests := map[string]func(){
		"nil token":      func() { var tok *Token; tok.MustHold("test") },
		"released token": func() { stale.MustHold("test") },
		"other lock": func() {
			other := New()
			l.Do(func(tok *Token) { tok.MustHoldLock("test", other) })
		},
	}
	for name, fn := range tests {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if _, ok := recover().(*errors.ContractError); !ok {
					t.Error("expected a contract violation")
				}
			}()
			fn()
		})
	}
}

func TestCooperativeLock(t *testing.T) {
	l := NewCooperative()
	tok := l.Acquire()
	tok.Enter()
	tok.MustHoldLock("test", l)
	tok.Exit()
	tok.Release()
	if tok.Holds(l) {
		t.Error("cooperative token still holds after Release")
	}
}

type quietHandler struct{}

func (quietHandler) HandleError(*errors.Error)                     {}
func (quietHandler) HandlePanic(*errors.PanicError)                {}
func (quietHandler) HandleContractViolation(*errors.ContractError) {}
