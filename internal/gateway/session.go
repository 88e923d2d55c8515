// internal/gateway/session.go
//
// Shared session-state holder for gateway drivers.
//
// Both drivers keep the current session here and push changes to
// subscribers.  Delivery is last-write-wins: the payload is an identity, not
// a sequence, so a stale notification is simply overwritten by the next one.

package gateway

import "sync"

// SessionState holds the current session and its listeners.  The zero value
// is ready to use; drivers embed one.
type SessionState struct {
	mu      sync.RWMutex
	current *Session
	subs    map[int]func(*Session)
	nextSub int
}

// Current returns the session, or nil when signed out.
func (s *SessionState) Current() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Replace installs sess (nil on sign-out) and notifies every subscriber.
func (s *SessionState) Replace(sess *Session) {
	s.mu.Lock()
	s.current = sess
	listeners := make([]func(*Session), 0, len(s.subs))
	for _, fn := range s.subs {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(sess)
	}
}

// OnSessionChange registers fn and returns a cancel function.
func (s *SessionState) OnSessionChange(fn func(*Session)) (cancel func()) {
	s.mu.Lock()
	if s.subs == nil {
		s.subs = make(map[int]func(*Session))
	}
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}
