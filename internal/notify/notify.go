// Package notify emits toasts: short-lived, best-effort status messages
// reporting the outcome of a console action. Toasts are never persisted.
package notify

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// DefaultTTL is how long a toast stays active unless dismissed
const DefaultTTL = 5 * time.Second

// Kind is the severity of a toast
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
)

// Toast is one notification
type Toast struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Text joins title and message for display
func (t Toast) Text() string {
	if t.Message == "" {
		return t.Title
	}
	if t.Title == "" {
		return t.Message
	}
	return t.Title + ": " + t.Message
}

// Notifier queues toasts and renders each one as it is added.
// It is safe for concurrent use.
type Notifier struct {
	mu     sync.Mutex
	toasts []Toast
	ttl    time.Duration
	now    func() time.Time
	out    io.Writer
	colors bool
}

// Option configures a Notifier
type Option func(*Notifier)

// WithTTL sets the display duration
func WithTTL(ttl time.Duration) Option {
	return func(n *Notifier) {
		if ttl > 0 {
			n.ttl = ttl
		}
	}
}

// WithOutput sets where toasts are rendered; nil silences rendering
func WithOutput(w io.Writer) Option {
	return func(n *Notifier) { n.out = w }
}

// WithColors toggles coloured rendering
func WithColors(enabled bool) Option {
	return func(n *Notifier) { n.colors = enabled }
}

// WithClock replaces time.Now, for tests
func WithClock(now func() time.Time) Option {
	return func(n *Notifier) { n.now = now }
}

// New creates a Notifier rendering to stderr with colours
func New(opts ...Option) *Notifier {
	n := &Notifier{
		ttl:    DefaultTTL,
		now:    time.Now,
		out:    os.Stderr,
		colors: true,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Add enqueues a toast and renders it. It never fails.
func (n *Notifier) Add(kind Kind, title, message string) Toast {
	t := Toast{
		ID:        uuid.NewString(),
		Kind:      kind,
		Title:     title,
		Message:   message,
		CreatedAt: n.now(),
	}

	n.mu.Lock()
	n.prune(t.CreatedAt)
	n.toasts = append(n.toasts, t)
	out, colors := n.out, n.colors
	n.mu.Unlock()

	if out != nil {
		render(out, colors, t)
	}
	return t
}

// Success adds a success toast
func (n *Notifier) Success(title, message string) Toast {
	return n.Add(KindSuccess, title, message)
}

// Error adds an error toast
func (n *Notifier) Error(title, message string) Toast {
	return n.Add(KindError, title, message)
}

// Warning adds a warning toast
func (n *Notifier) Warning(title, message string) Toast {
	return n.Add(KindWarning, title, message)
}

// Info adds an info toast
func (n *Notifier) Info(title, message string) Toast {
	return n.Add(KindInfo, title, message)
}

// Active returns the toasts still on screen, oldest first
func (n *Notifier) Active() []Toast {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.prune(n.now())
	return append([]Toast(nil), n.toasts...)
}

// Dismiss removes a toast before it expires
func (n *Notifier) Dismiss(id string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, t := range n.toasts {
		if t.ID == id {
			n.toasts = append(n.toasts[:i], n.toasts[i+1:]...)
			return true
		}
	}
	return false
}

// prune drops expired toasts; callers hold mu
func (n *Notifier) prune(now time.Time) {
	kept := n.toasts[:0]
	for _, t := range n.toasts {
		if now.Sub(t.CreatedAt) < n.ttl {
			kept = append(kept, t)
		}
	}
	n.toasts = kept
}

func render(w io.Writer, colors bool, t Toast) {
	if !colors {
		prefix := ""
		switch t.Kind {
		case KindError:
			prefix = "Error: "
		case KindWarning:
			prefix = "Warning: "
		case KindInfo:
			prefix = "Info: "
		}
		fmt.Fprintln(w, prefix+t.Text())
		return
	}

	var c *color.Color
	switch t.Kind {
	case KindSuccess:
		c = color.New(color.FgGreen)
	case KindError:
		c = color.New(color.FgRed)
	case KindWarning:
		c = color.New(color.FgYellow)
	default:
		c = color.New(color.FgBlue)
	}
	c.Fprintln(w, t.Text())
}

var (
	defaultMu       sync.RWMutex
	defaultNotifier = New()
)

// Default returns the process-wide notifier used by commands
func Default() *Notifier {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultNotifier
}

// SetDefault replaces the process-wide notifier
func SetDefault(n *Notifier) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultNotifier = n
}
