// Package session holds the authenticated-user state for one client run.
// Login replaces the user record wholesale; logout clears it. There is no
// credential check anywhere; the platform mock has exactly one member.
package session

import (
	"sync"

	"deresnet/internal/research"
)

// Session is the auth holder consumed by the views. It is injected into the
// root model at composition time rather than living as a package global, so
// views stay testable in isolation.
type Session struct {
	mu   sync.RWMutex
	user *research.User
}

// New returns an anonymous session.
func New() *Session {
	return &Session{}
}

// Login replaces the current user and marks the session authenticated.
func (s *Session) Login(u research.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &u
}

// Logout clears the user and marks the session anonymous.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}

// Authenticated reports whether a user is logged in.
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// User returns the current user, or nil for an anonymous session. The
// returned record is a copy-by-pointer of session state; callers must not
// mutate it.
func (s *Session) User() *research.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}
