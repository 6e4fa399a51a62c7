// Package session tracks the client's authentication state. The manager is
// a small in-memory state machine with two states, no session and an active
// session for one user. Transitions happen only after the corresponding
// repository operation has succeeded, so a failed login or logout leaves
// the state unchanged.
package session

import (
	"sync"

	"github.com/treiher/valens-client/internal/domain"
)

// Manager holds the current session state. The zero value is usable and
// starts without a session.
type Manager struct {
	mu     sync.RWMutex
	user   domain.User
	active bool
}

// NewManager returns a manager in the no-session state.
func NewManager() *Manager {
	return &Manager{}
}

// Activate transitions to an active session for the given user, replacing
// any previous session.
func (m *Manager) Activate(user domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = user
	m.active = true
}

// Deactivate transitions to the no-session state.
func (m *Manager) Deactivate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = domain.User{}
	m.active = false
}

// Current returns the session user and whether a session is active.
func (m *Manager) Current() (domain.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user, m.active
}
