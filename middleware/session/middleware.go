// Package session provides Velaros middleware that attaches a session to
// each WebSocket connection. Sessions live in a pluggable Store; an
// in-memory store is included. Register Middleware with router.UseOpen and
// CloseMiddleware with router.UseClose, then read the session from handlers
// with From.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/RobertWHurst/velaros"
)

const sessionKey = "validaros.session"

// DefaultTTL is the session time-to-live used when no WithTTL option is
// given.
const DefaultTTL = 24 * time.Hour

// Option configures the middleware.
type Option func(*options)

type options struct {
	ttl          time.Duration
	resumeHeader string
}

// WithTTL sets the time-to-live for new sessions.
func WithTTL(ttl time.Duration) Option {
	return func(o *options) {
		o.ttl = ttl
	}
}

// WithResumeHeader makes the middleware resume an existing session when the
// connection's handshake carries the named header with a session ID the
// store still knows. Connections without the header, or with an unknown or
// expired ID, get a fresh session as usual.
func WithResumeHeader(name string) Option {
	return func(o *options) {
		o.resumeHeader = name
	}
}

// Middleware creates a connection-open handler that attaches a session to
// the connection at the socket level, so every message handler on the
// connection can reach it via From. By default each connection gets a fresh
// session saved to the store; with WithResumeHeader a connection can resume
// a previous session by presenting its ID in a handshake header. Register it
// with router.UseOpen:
//
//	store := session.NewMemoryStore(10 * time.Minute)
//	router.UseOpen(session.Middleware(store))
//	router.UseClose(session.CloseMiddleware(store))
func Middleware(store Store, opts ...Option) func(ctx *velaros.Context) {
	o := &options{ttl: DefaultTTL}
	for _, opt := range opts {
		opt(o)
	}

	return func(ctx *velaros.Context) {
		if o.resumeHeader != "" {
			if id := ctx.Headers().Get(o.resumeHeader); id != "" {
				if existing, err := store.Get(ctx, id); err == nil {
					ctx.SetOnSocket(sessionKey, existing)
					ctx.Next()
					return
				}
			}
		}

		newSession := NewSession(uuid.NewString(), o.ttl)

		if err := store.Save(ctx, newSession); err != nil {
			ctx.Error = err
			return
		}

		ctx.SetOnSocket(sessionKey, newSession)
		ctx.Next()
	}
}

// CloseMiddleware creates a connection-close handler that removes the
// connection's session from the store. Register it with router.UseClose.
func CloseMiddleware(store Store) func(ctx *velaros.Context) {
	return func(ctx *velaros.Context) {
		if session, ok := From(ctx); ok {
			if err := store.Delete(ctx, session.ID); err != nil {
				ctx.Error = err
				return
			}
		}
		ctx.Next()
	}
}

// From returns the session attached to the connection. The second return
// value is false if no session middleware ran for this connection.
func From(ctx *velaros.Context) (*Session, bool) {
	value, ok := ctx.GetFromSocket(sessionKey)
	if !ok {
		return nil, false
	}
	session, ok := value.(*Session)
	if !ok {
		return nil, false
	}
	return session, true
}

// Save persists the connection's session to the store. In-memory stores see
// value changes immediately, but external stores only persist what handlers
// changed when Save is called.
func Save(ctx *velaros.Context, store Store) error {
	session, ok := From(ctx)
	if !ok {
		return ErrNotFound
	}
	return store.Save(ctx, session)
}
