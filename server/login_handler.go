package server

import (
	"net/http"
	"strings"

	"github.com/jrsteele09/go-todo-server/sessions"
	"github.com/jrsteele09/go-todo-server/users"
	"github.com/rs/zerolog/log"
)

// LoginHandler serves the login page and processes login submissions.
type LoginHandler struct {
	users    users.UserRepo
	sessions sessions.Repo
	pages    *Pages
	forms    formReader
}

func NewLoginHandler(userRepo users.UserRepo, sessionRepo sessions.Repo, pages *Pages, forms formReader) *LoginHandler {
	return &LoginHandler{
		users:    userRepo,
		sessions: sessionRepo,
		pages:    pages,
		forms:    forms,
	}
}

func (h *LoginHandler) Execute(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.page(w, r)
	case http.MethodPost:
		h.submit(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// page renders the login form, or skips it when the caller is already logged in
func (h *LoginHandler) page(w http.ResponseWriter, r *http.Request) {
	if _, ok := resolveSession(h.sessions, r); ok {
		redirectSuccess(w, r, RouteTodoLists)
		return
	}

	data := LoginPageData{PageData: h.pages.page("")}
	if cookie, err := r.Cookie(messageCookieName); err == nil && cookie.Value != "" {
		data.Message = cookie.Value
		setMessageCookie(w, r, "", -1) // One-shot
	}
	h.pages.render(w, h.pages.login, http.StatusOK, data)
}

func (h *LoginHandler) submit(w http.ResponseWriter, r *http.Request) {
	form, err := h.forms.read(w, r)
	if err != nil {
		log.Debug().Err(err).Msg("Login: unreadable form")
		h.fail(w, r)
		return
	}

	userID := strings.TrimSpace(form.Get(FieldUserID))
	if userID == "" {
		h.fail(w, r)
		return
	}
	if _, err := h.users.Get(userID); err != nil {
		log.Info().Str("user", userID).Msg("Login: unknown user")
		h.fail(w, r)
		return
	}

	sessionID, err := h.sessions.Create(userID)
	if err != nil {
		log.Err(err).Str("user", userID).Msg("Login: failed to create session")
		h.fail(w, r)
		return
	}

	setSessionCookie(w, r, sessionID, 0)
	setMessageCookie(w, r, "", -1)
	log.Info().Str("user", userID).Msg("Login succeeded")
	redirectSuccess(w, r, RouteTodoLists)
}

func (h *LoginHandler) fail(w http.ResponseWriter, r *http.Request) {
	setMessageCookie(w, r, loginFailedMessage, 0)
	redirectSuccess(w, r, RouteLogin)
}
