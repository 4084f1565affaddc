package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

func (s *Server) initRoutes() error {
	login := NewLoginHandler(s.repos.Users, s.repos.Sessions, s.pages, s.forms)
	logout := NewLogoutHandler(s.repos.Sessions)
	lists := NewTodoListsHandler(s.repos.Todos, s.pages, s.forms)
	items := NewTodoListItemHandler(s.repos.Todos, s.pages, s.forms)
	static := NewStaticFileHandler(s.staticFS)

	// LOGIN
	s.RegisterRoute("GET "+RouteIndex, ChainMiddleware(login, s.HTMLMiddleWare()...))
	s.RegisterRoute("GET "+RouteLogin, ChainMiddleware(login, s.HTMLMiddleWare()...))
	s.RegisterRoute("POST "+RouteLogin, ChainMiddleware(login, s.HTMLMiddleWare()...))
	s.RegisterRoute("GET "+RouteLogout, ChainMiddleware(logout, s.HTMLMiddleWare()...))
	s.RegisterRoute("POST "+RouteLogout, ChainMiddleware(logout, s.HTMLMiddleWare()...))

	// TODO LISTS (require a session)
	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete} {
		s.RegisterRoute(method+" "+RouteTodoLists, ChainMiddleware(lists, s.HTMLMiddleWare(s.RequireSessionAuth())...))
		s.RegisterRoute(method+" "+RouteTodoList, ChainMiddleware(items, s.HTMLMiddleWare(s.RequireSessionAuth())...))
	}

	// Anything else may be a static asset
	s.RegisterRoute("GET "+RouteStaticFile, static)

	return s.routeErr
}

func logRoute(method, path string) {
	log.Info().Msgf("[%-19s] %s", colouredMethod(method), path)
}

func logError(method, path, error string) {
	errorString := Red + error + ResetColor
	log.Warn().Msgf("[%-19s] %s %s", colouredMethod(method), path, errorString)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func (s *Server) RegisterRoute(pattern string, handler Handler) {
	if err := s.dispatcher.Handle(pattern, handler); err != nil {
		if s.routeErr == nil {
			s.routeErr = fmt.Errorf("[Server RegisterRoute] %w", err)
		}
		return
	}
	s.routes = append(s.routes, pattern)
}
