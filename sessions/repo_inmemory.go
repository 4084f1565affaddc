package sessions

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jrsteele09/go-todo-server/internal/errors"
)

var _ Repo = (*InMemoryRepo)(nil)

// InMemoryRepo is an in-memory implementation of Repo
type InMemoryRepo struct {
	mu       sync.RWMutex
	sessions map[string]Session // sessionID -> Session
	byUser   map[string]string  // userID -> sessionID
	now      func() time.Time
	newID    func() string
}

// NewInMemoryRepo creates a new in-memory session repository
func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		sessions: make(map[string]Session),
		byUser:   make(map[string]string),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Create starts a session for userID with a fresh random token
func (r *InMemoryRepo) Create(userID string) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("[sessions Create] userID is required: %w", errors.ErrInvalidRequest)
	}
	sessionID := r.newID()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.bind(sessionID, userID)
	return sessionID, nil
}

// Bind attaches sessionID to userID, replacing any session either one had
func (r *InMemoryRepo) Bind(sessionID, userID string) error {
	if sessionID == "" {
		return fmt.Errorf("[sessions Bind] sessionID is required: %w", errors.ErrInvalidRequest)
	}
	if userID == "" {
		return fmt.Errorf("[sessions Bind] userID is required: %w", errors.ErrInvalidRequest)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.bind(sessionID, userID)
	return nil
}

// Resolve retrieves the session bound to sessionID
func (r *InMemoryRepo) Resolve(sessionID string) (Session, error) {
	if sessionID == "" {
		return Session{}, errors.ErrSessionNotFound
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return Session{}, errors.ErrSessionNotFound
	}
	return session, nil
}

// Destroy removes a session
func (r *InMemoryRepo) Destroy(sessionID string) error {
	if sessionID == "" {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return nil // Already doesn't exist, no error
	}
	delete(r.sessions, sessionID)
	if r.byUser[session.UserID] == sessionID {
		delete(r.byUser, session.UserID)
	}
	return nil
}

func (r *InMemoryRepo) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions = make(map[string]Session)
	r.byUser = make(map[string]string)
}

// bind must be called with r.mu held.
func (r *InMemoryRepo) bind(sessionID, userID string) {
	// Latest login wins
	if previous, ok := r.byUser[userID]; ok {
		delete(r.sessions, previous)
	}
	if existing, ok := r.sessions[sessionID]; ok && existing.UserID != userID {
		delete(r.byUser, existing.UserID)
	}

	r.sessions[sessionID] = Session{
		ID:        sessionID,
		UserID:    userID,
		CreatedAt: r.now(),
	}
	r.byUser[userID] = sessionID
}
