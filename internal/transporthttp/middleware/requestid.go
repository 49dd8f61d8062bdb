package middleware

import (
	"net/http"

	"github.com/doka-one/doka/pkg/follower"
)

// RequestIDMiddleware reads (or mints) X-Request-ID and the sid/token
// header kind, and attaches both to the request context as a
// follower.Follower so every downstream log line can carry them.
func (mid *middleware) RequestIDMiddleware(fn http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind := follower.TokenKindNone
		switch {
		case r.Header.Get(follower.HeaderSID) != "":
			kind = follower.TokenKindSID
		case r.Header.Get(follower.HeaderToken) != "":
			kind = follower.TokenKindToken
		}

		f := follower.New(r.Header.Get(follower.HeaderRequestID), kind)
		w.Header().Set(follower.HeaderRequestID, f.RequestID)

		ctx := follower.WithFollower(r.Context(), f)
		fn(w, r.WithContext(ctx))
	}
}
