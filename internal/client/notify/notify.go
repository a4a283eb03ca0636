// Package notify keeps the stack of transient toast messages shown to the
// user. Toasts auto-dismiss after a fixed duration, can be dismissed early
// and stack newest first.
package notify

import (
	"sync"
	"time"
)

type Kind int

const (
	KindInfo Kind = iota
	KindSuccess
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	default:
		return "info"
	}
}

const (
	DefaultDuration  = 1500 * time.Millisecond
	DefaultMaxToasts = 5
)

type Toast struct {
	ID        int
	Message   string
	Kind      Kind
	CreatedAt time.Time
	Duration  time.Duration
}

func (t Toast) ExpiredAt(now time.Time) bool {
	return now.Sub(t.CreatedAt) >= t.Duration
}

func (t Toast) Remaining(now time.Time) time.Duration {
	r := t.Duration - now.Sub(t.CreatedAt)
	if r < 0 {
		return 0
	}
	return r
}

// Center is safe for concurrent use.
type Center struct {
	mu        sync.Mutex
	toasts    []Toast
	nextID    int
	maxToasts int
	duration  time.Duration
	now       func() time.Time
	listeners []func(Toast)
}

type Option func(*Center)

func WithDuration(d time.Duration) Option {
	return func(c *Center) {
		if d > 0 {
			c.duration = d
		}
	}
}

func WithMaxToasts(n int) Option {
	return func(c *Center) {
		if n > 0 {
			c.maxToasts = n
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Center) { c.now = now }
}

func NewCenter(opts ...Option) *Center {
	c := &Center{
		nextID:    1,
		maxToasts: DefaultMaxToasts,
		duration:  DefaultDuration,
		now:       time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Center) Info(msg string) int    { return c.add(msg, KindInfo) }
func (c *Center) Success(msg string) int { return c.add(msg, KindSuccess) }
func (c *Center) Error(msg string) int   { return c.add(msg, KindError) }

// OnToast registers fn to be called, outside the lock, for every new toast.
func (c *Center) OnToast(fn func(Toast)) {
	c.mu.Lock()
	c.listeners = append(c.listeners, fn)
	c.mu.Unlock()
}

func (c *Center) add(msg string, kind Kind) int {
	c.mu.Lock()
	t := Toast{
		ID:        c.nextID,
		Message:   msg,
		Kind:      kind,
		CreatedAt: c.now(),
		Duration:  c.duration,
	}
	c.nextID++

	c.toasts = append([]Toast{t}, c.toasts...)
	if len(c.toasts) > c.maxToasts {
		c.toasts = c.toasts[:c.maxToasts]
	}
	listeners := append([]func(Toast){}, c.listeners...)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(t)
	}
	return t.ID
}

// Dismiss removes the toast early. Unknown ids are ignored.
func (c *Center) Dismiss(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, t := range c.toasts {
		if t.ID == id {
			c.toasts = append(c.toasts[:i], c.toasts[i+1:]...)
			return true
		}
	}
	return false
}

// DismissNewest removes the most recent toast, if any.
func (c *Center) DismissNewest() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.prune()
	if len(c.toasts) == 0 {
		return false
	}
	c.toasts = c.toasts[1:]
	return true
}

// Active prunes expired toasts and returns a copy of the rest, newest first.
func (c *Center) Active() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.prune()
	out := make([]Toast, len(c.toasts))
	copy(out, c.toasts)
	return out
}

func (c *Center) Clear() {
	c.mu.Lock()
	c.toasts = nil
	c.mu.Unlock()
}

func (c *Center) prune() {
	now := c.now()
	kept := c.toasts[:0]
	for _, t := range c.toasts {
		if !t.ExpiredAt(now) {
			kept = append(kept, t)
		}
	}
	c.toasts = kept
}
