// Package observable provides the value holder whose change callbacks drive
// deferred recomputation in the widget tree.
//
// Every read-modify-notify happens under the tree lock: Set takes the
// caller's lock token and hands it to each subscriber, so a callback may set
// dirty flags on widgets without acquiring the lock again.
package observable

import (
	"slices"

	"github.com/go-strata/strata/pkg/treelock"
)

// Observable holds a value of type T and notifies subscribers on change.
type Observable[T comparable] struct {
	value  T
	subs   []*subscription[T]
	nextID uint64
}

// New creates an observable with an initial value.
func New[T comparable](initial T) *Observable[T] {
	return &Observable[T]{value: initial}
}

// Value returns the current value.
func (o *Observable[T]) Value() T {
	return o.value
}

// Set stores v and invokes every subscriber with the token. Setting a value
// equal to the current one does nothing.
func (o *Observable[T]) Set(tok *treelock.Token, v T) {
	tok.MustHold("observable.Observable.Set")
	if o.value == v {
		return
	}
	o.value = v

	// Subscribers may cancel themselves; iterate over a snapshot.
	subs := slices.Clone(o.subs)
	tok.Enter()
	defer tok.Exit()
	for _, s := range subs {
		if !s.cancelled {
			s.fn(tok, v)
		}
	}
}

// Subscribe registers fn to be called after every change. The returned
// Subscription cancels it.
func (o *Observable[T]) Subscribe(fn func(tok *treelock.Token, v T)) Subscription {
	o.nextID++
	s := &subscription[T]{id: o.nextID, fn: fn, owner: o}
	o.subs = append(o.subs, s)
	return s
}

// Subscribers returns the number of live subscriptions.
func (o *Observable[T]) Subscribers() int {
	return len(o.subs)
}

// Subscription is a handle to a registered callback.
type Subscription interface {
	Cancel()
}

type subscription[T comparable] struct {
	id        uint64
	fn        func(*treelock.Token, T)
	owner     *Observable[T]
	cancelled bool
}

func (s *subscription[T]) Cancel() {
	if s.cancelled {
		return
	}
	s.cancelled = true
	s.owner.subs = slices.DeleteFunc(s.owner.subs, func(other *subscription[T]) bool {
		return other.id == s.id
	})
}
