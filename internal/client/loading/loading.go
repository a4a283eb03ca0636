// Package loading provides the shared "work in progress" flag the front-ends
// use to draw a spinner.
package loading

import "sync"

// Signal is reference counted: it stays active while at least one holder
// has not released it.
type Signal struct {
	mu     sync.Mutex
	count  int
	subs   map[int]chan bool
	nextID int
}

func New() *Signal {
	return &Signal{subs: make(map[int]chan bool)}
}

// Acquire turns the signal on and returns its release func. Calling the
// release more than once has no further effect.
func (s *Signal) Acquire() (release func()) {
	s.mu.Lock()
	s.count++
	if s.count == 1 {
		s.broadcast(true)
	}
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			s.count--
			if s.count == 0 {
				s.broadcast(false)
			}
			s.mu.Unlock()
		})
	}
}

func (s *Signal) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count > 0
}

// Subscribe delivers on/off edges. A slow reader never blocks the holder:
// an unread edge is replaced by the newer one, so the last value received
// always matches Active.
func (s *Signal) Subscribe() (<-chan bool, func()) {
	ch := make(chan bool, 1)

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	s.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
			close(ch)
		})
	}
}

func (s *Signal) broadcast(v bool) {
	for _, ch := range s.subs {
		// drop a stale unread edge so the latest state wins
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- v:
		default:
		}
	}
}
