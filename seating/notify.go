package seating

import (
	"sync"
	"time"
)

// DefaultNotificationDuration is how long a message stays visible when no
// explicit duration is given.
const DefaultNotificationDuration = 3 * time.Second

// Notifier is a single-slot, timed user message. A new message replaces the
// current one and discards its remaining time; nothing is queued. The timer
// callback fires on its own goroutine, so the slot is guarded by a mutex even
// though the widget itself is single-threaded.
type Notifier struct {
	mu         sync.Mutex
	message    string
	timer      *time.Timer
	generation uint64
	duration   time.Duration
	closed     bool
}

// NewNotifier creates a notifier with the given default duration; zero or
// negative means DefaultNotificationDuration.
func NewNotifier(duration time.Duration) *Notifier {
	if duration <= 0 {
		duration = DefaultNotificationDuration
	}
	return &Notifier{duration: duration}
}

// Show displays a message for the default duration.
func (n *Notifier) Show(message string) {
	n.ShowFor(message, n.duration)
}

// ShowFor displays a message for the given duration, cancelling any pending
// expiry of the previous message.
func (n *Notifier) ShowFor(message string, duration time.Duration) {
	if duration <= 0 {
		duration = n.duration
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}
	if n.timer != nil {
		n.timer.Stop()
	}
	n.message = message
	n.generation++
	generation := n.generation
	n.timer = time.AfterFunc(duration, func() {
		n.expire(generation)
	})
}

// expire clears the slot unless a newer message has replaced it since the
// timer was armed.
func (n *Notifier) expire(generation uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.generation != generation {
		return
	}
	n.message = ""
	n.timer = nil
}

// Message returns the currently visible message, or "" when the slot is
// empty.
func (n *Notifier) Message() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.message
}

// Close clears the slot and cancels any pending timer; no callback fires
// after Close returns. Show calls after Close are ignored.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.message = ""
	n.generation++
	n.closed = true
}
