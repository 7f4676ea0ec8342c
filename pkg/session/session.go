// Package session holds per-user transient state: what the admin console is
// waiting for, and which user handles the bot has seen. Nothing here survives
// a restart.
package session

import (
	"strings"
	"sync"

	"github.com/cindrella-bot/cindrella/pkg/model"
)

type Store struct {
	mu      sync.Mutex
	pending map[int]model.PendingAction
	handles map[string]int
}

func NewStore() *Store {
	return &Store{
		pending: map[int]model.PendingAction{},
		handles: map[string]int{},
	}
}

// SetPending overwrites any earlier pending action for the user.
func (s *Store) SetPending(userID int, action model.PendingAction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if action == model.PendingNone {
		delete(s.pending, userID)
		return
	}
	s.pending[userID] = action
}

// TakePending returns the user's pending action and clears it in one step, so
// the next message from the same user sees PendingNone.
func (s *Store) TakePending(userID int) model.PendingAction {
	s.mu.Lock()
	defer s.mu.Unlock()
	action, ok := s.pending[userID]
	if !ok {
		return model.PendingNone
	}
	delete(s.pending, userID)
	return action
}

func (s *Store) Pending(userID int) model.PendingAction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending[userID]
}

// SeenUser records a handle so moderation commands can resolve @handle
// arguments later; the Bot API has no lookup for arbitrary users.
func (s *Store) SeenUser(handle string, userID int) {
	if handle == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handles[strings.ToLower(handle)] = userID
}

func (s *Store) ResolveHandle(handle string) (int, bool) {
	handle = strings.ToLower(strings.TrimPrefix(handle, "@"))
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.handles[handle]
	return id, ok
}
