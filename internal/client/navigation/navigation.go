// Package navigation keeps the client's screen history.
package navigation

import "sync"

const (
	PathLogin    = "/login"
	PathRegister = "/register"
	PathHome     = "/home"
)

// Navigator is a stack of visited paths plus the page a logged-out user was
// sent away from.
type Navigator struct {
	mu         sync.Mutex
	history    []string
	returnPath string
	listeners  []func(string)
}

func New(start string) *Navigator {
	if start == "" {
		start = PathLogin
	}
	return &Navigator{history: []string{start}}
}

// OnChange registers fn to be called with the new current path.
func (n *Navigator) OnChange(fn func(string)) {
	n.mu.Lock()
	n.listeners = append(n.listeners, fn)
	n.mu.Unlock()
}

func (n *Navigator) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.history[len(n.history)-1]
}

func (n *Navigator) Push(path string) {
	n.mu.Lock()
	n.history = append(n.history, path)
	n.mu.Unlock()
	n.notify(path)
}

// Replace swaps the current entry so Back cannot return to it.
func (n *Navigator) Replace(path string) {
	n.mu.Lock()
	n.history[len(n.history)-1] = path
	n.mu.Unlock()
	n.notify(path)
}

// Back pops one entry. It reports false at the root.
func (n *Navigator) Back() bool {
	n.mu.Lock()
	if len(n.history) == 1 {
		n.mu.Unlock()
		return false
	}
	n.history = n.history[:len(n.history)-1]
	cur := n.history[len(n.history)-1]
	n.mu.Unlock()
	n.notify(cur)
	return true
}

// RedirectToLogin records from as the return path and replaces the current
// entry with the login screen.
func (n *Navigator) RedirectToLogin(from string) {
	n.mu.Lock()
	n.returnPath = from
	n.mu.Unlock()
	n.Replace(PathLogin)
}

// ReturnPath consumes the recorded path, falling back to home.
func (n *Navigator) ReturnPath() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	p := n.returnPath
	n.returnPath = ""
	if p == "" || p == PathLogin || p == PathRegister {
		return PathHome
	}
	return p
}

func (n *Navigator) History() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.history...)
}

func (n *Navigator) notify(path string) {
	n.mu.Lock()
	listeners := append([]func(string){}, n.listeners...)
	n.mu.Unlock()
	for _, fn := range listeners {
		fn(path)
	}
}
