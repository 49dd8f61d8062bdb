// Package session holds the session record Session Manager stores per sid
// and the repository/error contracts the rest of the service programs
// against.
package session

import (
	"context"
	"errors"
	"time"
)

// ErrCannotBeCreated mirrors the spec's SessionCannotBeCreated error, raised
// when customer_code, user_name or sid is empty or when the session row
// cannot be written. Tenant existence is not checked.
var ErrCannotBeCreated = errors.New("session cannot be created")

// ErrNotFound mirrors the spec's SessionNotFound error.
var ErrNotFound = errors.New("session not found")

// ErrTimedOut mirrors the spec's SessionTimedOut error, raised when a
// session exists but has exceeded its idle or absolute TTL.
var ErrTimedOut = errors.New("session timed out")

// Session is one open login, keyed by its encrypted session identifier.
type Session struct {
	SID          string
	CustomerCode string
	UserName     string
	CustomerID   int64
	UserID       int64
	Created      time.Time
	LastActive   time.Time
}

// Repository persists and queries session records.
type Repository interface {
	// Upsert inserts a session record, or renews LastActive if sid already
	// exists.
	Upsert(ctx context.Context, s *Session) error
	// Get fetches a session by sid. Returns ErrNotFound if absent.
	Get(ctx context.Context, sid string) (*Session, error)
	// Touch refreshes LastActive to now for sid.
	Touch(ctx context.Context, sid string, now time.Time) error
}
