package repository

import (
	"context"
	"errors"

	"pathfinder/internal/domain"
)

// ErrUnavailable wraps storage failures. The dialogue controller treats
// any store error as fatal for the turn.
var ErrUnavailable = errors.New("session store unavailable")

// SessionStore persists per-thread conversation state. A session is the
// unit of atomicity; there are no multi-session guarantees.
type SessionStore interface {
	// Load returns the session for the given thread id, or a fresh empty
	// session if none exists yet. A missing thread is not an error.
	Load(ctx context.Context, threadID string) (*domain.Session, error)

	// Save persists the session with last-writer-wins semantics. The plan
	// upsert and the history append commit together or not at all.
	Save(ctx context.Context, session *domain.Session) error
}
