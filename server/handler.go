package server

import "net/http"

// Handler produces at most one response for a request. A handler that writes
// nothing has declined and the Dispatcher moves on to the next route.
type Handler interface {
	Execute(w http.ResponseWriter, r *http.Request)
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc func(w http.ResponseWriter, r *http.Request)

func (f HandlerFunc) Execute(w http.ResponseWriter, r *http.Request) {
	f(w, r)
}

// Middleware wraps a Handler with cross-cutting behaviour.
type Middleware func(Handler) Handler
