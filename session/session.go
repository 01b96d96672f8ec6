// Package session stores per-user analysis sessions keyed by a cookie-carried
// UUID. Redis backs the store when configured, with an in-memory fallback for
// single-instance deployments.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/careercopilot/backend/models"
)

// CookieName is the cookie that carries the session ID.
const CookieName = "career_copilot_session"

// ErrNotFound is returned when a session does not exist or has expired.
var ErrNotFound = errors.New("session not found")

// Session holds the state accumulated for one analysis flow.
type Session struct {
	ID          string              `json:"id"`
	ResumeText  string              `json:"resume_text"`
	TargetRole  string              `json:"target_role"`
	Analysis    *models.Analysis    `json:"analysis,omitempty"`
	CoverLetter *models.CoverLetter `json:"cover_letter,omitempty"`
	UserID      string              `json:"user_id,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

// Store persists sessions for their TTL.
type Store interface {
	// Create allocates a new session with a fresh UUID.
	Create(ctx context.Context) (*Session, error)
	// Get returns the session or ErrNotFound when missing or expired.
	Get(ctx context.Context, id string) (*Session, error)
	// Save writes the session back, refreshing its TTL.
	Save(ctx context.Context, s *Session) error
	// Delete removes the session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error
}

func newSession(now time.Time) *Session {
	return &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
	}
}
