package portal

import (
	"sync"
	"time"
)

// ToastDuration is how long a notification stays on screen
const ToastDuration = 3 * time.Second

// ToastKind tags a notification as success or error
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
)

// Toast is the single on-screen notification
type Toast struct {
	Kind    ToastKind
	Message string
}

// Icon returns the glyph shown next to the message
func (t Toast) Icon() string {
	if t.Kind == ToastSuccess {
		return "✓"
	}
	return "✕"
}

// Notifier owns the one notification slot. A new notification replaces the
// current one; nothing is queued.
type Notifier struct {
	mu        sync.Mutex
	scheduler Scheduler
	current   *Toast
	gen       uint64
	onDismiss func()
}

// NewNotifier creates a notifier; onDismiss runs after a toast expires
func NewNotifier(s Scheduler, onDismiss func()) *Notifier {
	if s == nil {
		s = RealScheduler{}
	}
	return &Notifier{scheduler: s, onDismiss: onDismiss}
}

// Show replaces the current notification and schedules its dismissal
func (n *Notifier) Show(kind ToastKind, message string) {
	n.mu.Lock()
	n.gen++
	gen := n.gen
	n.current = &Toast{Kind: kind, Message: message}
	n.mu.Unlock()

	n.scheduler.AfterFunc(ToastDuration, func() {
		n.mu.Lock()
		if n.gen != gen {
			// superseded by a newer toast
			n.mu.Unlock()
			return
		}
		n.current = nil
		n.mu.Unlock()

		if n.onDismiss != nil {
			n.onDismiss()
		}
	})
}

// Current returns the visible notification, or nil
func (n *Notifier) Current() *Toast {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return nil
	}
	t := *n.current
	return &t
}
