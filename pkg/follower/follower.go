// Package follower carries the per-request identifiers that should appear on
// every log line a request touches, however many services it crosses:
// the X-Request-ID header and the type of token presented ("sid" vs
// "token"). Grounded on the teacher's per-request context values
// (constants.SessionIsAuthorized / constants.SessionID).
package follower

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type contextKey int

const followerContextKey contextKey = iota

// TokenKind distinguishes the two header-carried credentials a Doka request
// can present.
type TokenKind string

const (
	TokenKindNone    TokenKind = ""
	TokenKindSID     TokenKind = "sid"
	TokenKindToken   TokenKind = "token"
	HeaderRequestID            = "X-Request-ID"
	HeaderSID                  = "sid"
	HeaderToken                = "token"
)

// Follower is the bundle of identifiers threaded through a single request's
// lifetime.
type Follower struct {
	RequestID string
	TokenKind TokenKind
}

// New creates a Follower, generating a request id if none was supplied on
// the incoming request.
func New(requestID string, kind TokenKind) Follower {
	if requestID == "" {
		requestID = uuid.NewString()
	}
	return Follower{RequestID: requestID, TokenKind: kind}
}

// WithFollower attaches f to ctx.
func WithFollower(ctx context.Context, f Follower) context.Context {
	return context.WithValue(ctx, followerContextKey, f)
}

// FromContext retrieves the Follower attached earlier in the request
// lifetime, or the zero value if none was attached.
func FromContext(ctx context.Context) Follower {
	f, _ := ctx.Value(followerContextKey).(Follower)
	return f
}

// LoggerFields returns the zap fields that should be attached to every log
// line emitted while handling this request.
func (f Follower) LoggerFields() []zap.Field {
	return []zap.Field{
		zap.String("request_id", f.RequestID),
		zap.String("token_kind", string(f.TokenKind)),
	}
}
