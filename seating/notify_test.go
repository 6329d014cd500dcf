package seating

import (
	"testing"
	"time"
)

func TestNotifier_ShowAndExpire(t *testing.T) {
	n := NewNotifier(40 * time.Millisecond)
	defer n.Close()

	n.Show("hello")
	if got := n.Message(); got != "hello" {
		t.Fatalf("expected message to be visible, got %q", got)
	}

	time.Sleep(100 * time.Millisecond)
	if got := n.Message(); got != "" {
		t.Fatalf("expected message to expire, got %q", got)
	}
}

func TestNotifier_ReplacementDiscardsPriorTimer(t *testing.T) {
	n := NewNotifier(80 * time.Millisecond)
	defer n.Close()

	n.Show("first")
	time.Sleep(40 * time.Millisecond)
	n.Show("second")

	// The first message's timer would have fired by now; the replacement
	// must still be visible on its own clock.
	time.Sleep(60 * time.Millisecond)
	if got := n.Message(); got != "second" {
		t.Fatalf("expected replacement to survive, got %q", got)
	}

	time.Sleep(60 * time.Millisecond)
	if got := n.Message(); got != "" {
		t.Fatalf("expected replacement to expire, got %q", got)
	}
}

func TestNotifier_ExplicitDuration(t *testing.T) {
	n := NewNotifier(time.Hour)
	defer n.Close()

	n.ShowFor("short-lived", 30*time.Millisecond)
	time.Sleep(90 * time.Millisecond)
	if got := n.Message(); got != "" {
		t.Fatalf("expected explicit duration to win, got %q", got)
	}
}

func TestNotifier_CloseCancelsPendingTimer(t *testing.T) {
	n := NewNotifier(30 * time.Millisecond)

	n.Show("doomed")
	n.Close()
	if got := n.Message(); got != "" {
		t.Fatalf("expected empty slot after close, got %q", got)
	}

	n.Show("ignored")
	if got := n.Message(); got != "" {
		t.Fatalf("expected show after close to be ignored, got %q", got)
	}
}
