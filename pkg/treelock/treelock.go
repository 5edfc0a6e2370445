// Package treelock provides the single lock that serializes every read and
// write of a widget tree.
//
// Go has no goroutine-reentrant mutex, so re-entry is expressed with an
// explicit capability: Acquire returns a *Token, and code that already holds
// the lock passes that token down instead of locking again. Passes recurse
// into children with the same token, and observable callbacks fired during a
// pass receive it too. The token tracks its re-entry depth so preconditions
// can be asserted with MustHold.
package treelock

import (
	"sync"

	"github.com/go-strata/strata/pkg/errors"
)

type mutex interface {
	Lock()
	Unlock()
}

type noopMutex struct{}

func (noopMutex) Lock()   {}
func (noopMutex) Unlock() {}

// Lock guards one widget tree.
type Lock struct {
	mu     mutex
	held   bool
	holder *Token
}

// New returns a lock backed by a sync.Mutex.
func New() *Lock {
	return &Lock{mu: &sync.Mutex{}}
}

// NewCooperative returns a lock with the same assertion surface but no
// mutual exclusion, for single-threaded drivers.
func NewCooperative() *Lock {
	return &Lock{mu: noopMutex{}}
}

// Acquire blocks until the lock is free and returns a token at depth one.
// Callers that already hold a token must use Token.Enter instead; calling
// Acquire twice on the same goroutine deadlocks.
func (l *Lock) Acquire() *Token {
	l.mu.Lock()
	errors.Assert(!l.held, "treelock.Lock.Acquire", "lock acquired while already held")
	t := &Token{lock: l, depth: 1}
	l.held = true
	l.holder = t
	return t
}

// Do acquires the lock, runs fn with the token and releases the lock, even
// if fn panics.
func (l *Lock) Do(fn func(tok *Token)) {
	tok := l.Acquire()
	defer tok.Release()
	fn(tok)
}

// Token is proof that the caller holds a Lock.
type Token struct {
	lock  *Lock
	depth int
}

// Enter records a nested use of the lock by the holder.
func (t *Token) Enter() *Token {
	t.MustHold("treelock.Token.Enter")
	t.depth++
	return t
}

// Exit undoes one Enter. Exiting the outermost level releases the lock.
func (t *Token) Exit() {
	t.MustHold("treelock.Token.Exit")
	t.depth--
	if t.depth == 0 {
		t.unlock()
	}
}

// Release drops the lock regardless of depth. It is what Lock.Do defers.
func (t *Token) Release() {
	t.MustHold("treelock.Token.Release")
	t.depth = 0
	t.unlock()
}

func (t *Token) unlock() {
	l := t.lock
	l.held = false
	l.holder = nil
	l.mu.Unlock()
}

// Depth returns how many times the holder has entered the lock. It is zero
// once the token has been released.
func (t *Token) Depth() int {
	if t == nil {
		return 0
	}
	return t.depth
}

// Holds reports whether t is the live token of l.
func (t *Token) Holds(l *Lock) bool {
	return t != nil && t.depth > 0 && t.lock == l && l.holder == t
}

// MustHold asserts that the token is live. op names the caller for the
// violation report.
func (t *Token) MustHold(op string) {
	errors.Assert(t != nil && t.depth > 0 && t.lock.holder == t, op, "tree lock not held")
}

// MustHoldLock asserts that the token is the live token of l.
func (t *Token) MustHoldLock(op string, l *Lock) {
	errors.Assert(t.Holds(l), op, "tree lock not held")
}
