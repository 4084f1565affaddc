package server

import (
	"fmt"
	"io/fs"
	"net/http"
	"os"

	"github.com/jrsteele09/go-todo-server/internal/config"
	"github.com/jrsteele09/go-todo-server/sessions"
	"github.com/jrsteele09/go-todo-server/todos"
	"github.com/jrsteele09/go-todo-server/users"
	"github.com/rs/zerolog/log"
)

// Repos groups the process-wide state the handlers operate on.
type Repos struct {
	Users    users.UserRepo
	Sessions sessions.Repo
	Todos    todos.Repo
}

// NewInMemoryRepos returns empty in-memory stores.
func NewInMemoryRepos() Repos {
	return Repos{
		Users:    users.NewInMemoryRepo(),
		Sessions: sessions.NewInMemoryRepo(),
		Todos:    todos.NewInMemoryRepo(),
	}
}

type Server struct {
	env        string // Environment (e.g., "DEV", "PROD")
	config     config.Config
	repos      Repos
	dispatcher *Dispatcher
	handler    Handler
	routes     []string
	routeErr   error
	staticFS   fs.FS
	pages      *Pages
	forms      formReader
}

func New(config config.Config, repos Repos) (*Server, error) {
	if repos.Users == nil || repos.Sessions == nil || repos.Todos == nil {
		return nil, fmt.Errorf("[Server New] users, sessions and todos repos are required")
	}

	pages, err := ParsePages(config.GetAppName())
	if err != nil {
		return nil, fmt.Errorf("[Server New] failed to parse templates: %w", err)
	}

	s := &Server{
		env:        config.GetEnv(),
		config:     config,
		repos:      repos,
		dispatcher: NewDispatcher(),
		staticFS:   StaticFilesFS(),
		pages:      pages,
		forms:      formReader{maxBytes: config.GetMaxBodyBytes()},
	}
	if root := config.GetStaticRoot(); root != "" {
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			return nil, fmt.Errorf("[Server New] static root %q is not a directory", root)
		}
		s.staticFS = os.DirFS(root)
	}

	if err := s.initRoutes(); err != nil {
		return nil, err
	}
	s.handler = ChainMiddleware(s.dispatcher, s.LoggingMiddleware, s.RecoverMiddleware)
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.Execute(w, r)
}

// InjectData reinitialises all state: the user set is replaced, every
// session and todo list is dropped, and sessions carried by the profiles are
// bound again.
func (s *Server) InjectData(profiles map[string]users.User) error {
	if err := s.repos.Users.Replace(profiles); err != nil {
		return fmt.Errorf("[Server InjectData] %w", err)
	}
	s.repos.Sessions.Reset()
	s.repos.Todos.Reset()

	for key, u := range profiles {
		if u.SessionID == "" {
			continue
		}
		if err := s.repos.Sessions.Bind(u.SessionID, key); err != nil {
			return fmt.Errorf("[Server InjectData] bind session for %s: %w", key, err)
		}
	}
	log.Info().Int("users", len(profiles)).Msg("User data injected")
	return nil
}
