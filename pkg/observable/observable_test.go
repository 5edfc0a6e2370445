package observable

import (
	"testing"

	"github.com/go-strata/strata/pkg/treelock"
)

func TestSetNotifiesUnderLock(t *testing.T) {
	l := treelock.New()
	label := New("Open")

	var got []string
	var depth int
	label.Subscribe(func(tok *treelock.Token, v string) {
		tok.MustHoldLock("test", l)
		depth = tok.Depth()
		got = append(got, v)
	})

	l.Do(func(tok *treelock.Token) {
		label.Set(tok, "Save")
		label.Set(tok, "Save")
		label.Set(tok, "Close")
	})

	if len(got) != 2 || got[0] != "Save" || got[1] != "Close" {
		t.Errorf("notifications = %v, want [Save Close]", got)
	}
	if depth != 2 {
		t.Errorf("callback depth = %d, want 2 (re-entered)", depth)
	}
	if label.Value() != "Close" {
		t.Errorf("Value = %q, want Close", label.Value())
	}
}

func TestCancel(t *testing.T) {
	l := treelock.New()
	v := New(0)

	calls := 0
	sub := v.Subscribe(func(*treelock.Token, int) { calls++ })
	if v.Subscribers() != 1 {
		t.Fatalf("Subscribers = %d, want 1", v.Subscribers())
	}
	sub.Cancel()
	sub.Cancel()
	if v.Subscribers() != 0 {
		t.Fatalf("Subscribers after Cancel = %d, want 0", v.Subscribers())
	}

	l.Do(func(tok *treelock.Token) { v.Set(tok, 1) })
	if calls != 0 {
		t.Errorf("cancelled callback invoked %d times", calls)
	}
}

func TestCancelDuringNotify(t *testing.T) {
	l := treelock.New()
	v := New(0)

	var first Subscription
	secondCalls := 0
	first = v.Subscribe(func(*treelock.Token, int) { first.Cancel() })
	v.Subscribe(func(*treelock.Token, int) { secondCalls++ })

	l.Do(func(tok *treelock.Token) {
		v.Set(tok, 1)
		v.Set(tok, 2)
	})
	if secondCalls != 2 {
		t.Errorf("second subscriber calls = %d, want 2", secondCalls)
	}
	if v.Subscribers() != 1 {
		t.Errorf("Subscribers = %d, want 1", v.Subscribers())
	}
}
