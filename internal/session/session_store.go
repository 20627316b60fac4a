package session

import (
	"Kitchen-Gateway/domain"
	"Kitchen-Gateway/pkg/pantry"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL bounds how long an idle session survives. Sessions only hold
// disposable view state, so losing one costs a re-fetch, nothing more.
const DefaultTTL = 2 * time.Hour

type (
	// Session carries the per-client state the upstream API does not know
	// about: the selection flags on pantry items and the last suggestion
	// batch. It is identified by the X-Session-ID header.
	Session struct {
		ID       string
		mu       sync.Mutex
		items    []domain.PantryItem
		recipes  []domain.Recipe
		lastSeen time.Time
	}

	Store struct {
		mu       sync.Mutex
		sessions map[string]*Session
		ttl      time.Duration
		now      func() time.Time
	}
)

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Resolve returns the session for id, or a fresh one when id is empty or
// unknown. Expired sessions are dropped lazily on access.
func (s *Store) Resolve(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.evictExpired(now)

	if id != "" {
		if sess, ok := s.sessions[id]; ok {
			sess.lastSeen = now
			return sess
		}
	}

	sess := &Session{
		ID:       uuid.New().String(),
		lastSeen: now,
	}
	s.sessions[sess.ID] = sess
	return sess
}

// Get returns the session for id without creating one.
func (s *Store) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.evictExpired(now)

	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	sess.lastSeen = now
	return sess, nil
}

func (s *Store) evictExpired(now time.Time) {
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.ttl {
			delete(s.sessions, id)
		}
	}
}

// SetItems replaces the session's pantry view, preserving selection flags
// for items that survived the refresh.
func (s *Session) SetItems(items []domain.PantryItem) []domain.PantryItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	selected := make(map[string]bool, len(s.items))
	for _, item := range s.items {
		if item.Selected {
			selected[item.ID] = true
		}
	}
	for i := range items {
		if selected[items[i].ID] {
			items[i].Selected = true
		}
	}
	s.items = items
	return s.snapshotItems()
}

func (s *Session) Items() []domain.PantryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotItems()
}

func (s *Session) Toggle(id string, selected bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := pantry.Toggle(s.items, id, selected)
	return ok
}

func (s *Session) Selected() []domain.PantryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pantry.Selected(s.items)
}

func (s *Session) SetRecipes(recipes []domain.Recipe) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recipes = recipes
}

// Recipe returns the suggestion at index from the last batch.
func (s *Session) Recipe(index int) (domain.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.recipes) {
		return domain.Recipe{}, domain.ErrRecipeNotFound
	}
	return s.recipes[index], nil
}

func (s *Session) snapshotItems() []domain.PantryItem {
	out := make([]domain.PantryItem, len(s.items))
	copy(out, s.items)
	return out
}
