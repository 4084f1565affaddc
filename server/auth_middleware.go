package server

import (
	"context"
	"net/http"

	"github.com/jrsteele09/go-todo-server/sessions"
	"github.com/rs/zerolog/log"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// ContextKeyUserID stores the authenticated user key
	ContextKeyUserID ContextKey = "user_id"
	// ContextKeySession stores the resolved session
	ContextKeySession ContextKey = "session"
)

// RequireSessionAuth resolves the session cookie before the wrapped handler
// runs. Requests without a valid session are redirected to the login page and
// the handler is never called.
func (s *Server) RequireSessionAuth() Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := s.sessionFromRequest(r)
			if !ok {
				log.Debug().Str("method", r.Method).Str("path", r.URL.Path).Msg("No valid session, redirecting to login")
				redirectSuccess(w, r, RouteLogin)
				return
			}

			// Inject session info into context
			ctx := context.WithValue(r.Context(), ContextKeyUserID, session.UserID)
			ctx = context.WithValue(ctx, ContextKeySession, session)
			next.Execute(w, r.WithContext(ctx))
		})
	}
}

// sessionFromRequest resolves the sessionid cookie to a session.
func (s *Server) sessionFromRequest(r *http.Request) (sessions.Session, bool) {
	return resolveSession(s.repos.Sessions, r)
}

func resolveSession(repo sessions.Repo, r *http.Request) (sessions.Session, bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return sessions.Session{}, false
	}
	session, err := repo.Resolve(cookie.Value)
	if err != nil {
		return sessions.Session{}, false
	}
	return session, true
}

// UserIDFromContext returns the user key injected by RequireSessionAuth.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(ContextKeyUserID).(string)
	return userID, ok && userID != ""
}
