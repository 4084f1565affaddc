package server

import (
	"net/http"

	"github.com/jrsteele09/go-todo-server/sessions"
	"github.com/rs/zerolog/log"
)

// LogoutHandler ends the caller's session. It answers GET and POST alike.
type LogoutHandler struct {
	sessions sessions.Repo
}

func NewLogoutHandler(sessionRepo sessions.Repo) *LogoutHandler {
	return &LogoutHandler{sessions: sessionRepo}
}

func (h *LogoutHandler) Execute(w http.ResponseWriter, r *http.Request) {
	session, ok := resolveSession(h.sessions, r)
	setSessionCookie(w, r, "", -1) // Delete cookie
	if !ok {
		redirectSuccess(w, r, RouteLogin)
		return
	}

	if err := h.sessions.Destroy(session.ID); err != nil {
		log.Err(err).Msg("Failed to delete session")
	}
	log.Info().Str("user", session.UserID).Msg("Logged out")
	redirectSuccess(w, r, RouteIndex)
}
