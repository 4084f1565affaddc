package server

import (
	"fmt"
	"net/http"
	"strings"
)

type segment struct {
	literal string
	param   string
	rest    bool // {name...} swallows the remaining path
}

type route struct {
	method   string
	pattern  string
	segments []segment
	handler  Handler
}

// Dispatcher matches a request's method and path against an ordered route
// table. Routes are tried in registration order; the first handler that
// writes a response ends the search. When nothing responds the notFound
// handler runs.
type Dispatcher struct {
	routes   []route
	notFound Handler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		notFound: HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "404 - Page Not Found", http.StatusNotFound)
		}),
	}
}

// Handle registers handler for a "METHOD /path" pattern. Path segments of
// the form {name} match a single segment, {name...} matches the rest of the
// path and may only be last. Matched values are available via r.PathValue.
func (d *Dispatcher) Handle(pattern string, handler Handler) error {
	method, path, ok := strings.Cut(pattern, " ")
	if !ok || method == "" || !strings.HasPrefix(path, "/") {
		return fmt.Errorf("[Dispatcher Handle] invalid pattern %q", pattern)
	}
	if handler == nil {
		return fmt.Errorf("[Dispatcher Handle] nil handler for %q", pattern)
	}

	parts := splitPath(path)
	segments := make([]segment, 0, len(parts))
	for i, p := range parts {
		if !strings.HasPrefix(p, "{") || !strings.HasSuffix(p, "}") {
			segments = append(segments, segment{literal: p})
			continue
		}
		name := p[1 : len(p)-1]
		rest := strings.HasSuffix(name, "...")
		name = strings.TrimSuffix(name, "...")
		if name == "" {
			return fmt.Errorf("[Dispatcher Handle] empty wildcard in %q", pattern)
		}
		if rest && i != len(parts)-1 {
			return fmt.Errorf("[Dispatcher Handle] %q: {%s...} must be the last segment", pattern, name)
		}
		segments = append(segments, segment{param: name, rest: rest})
	}

	d.routes = append(d.routes, route{
		method:   strings.ToUpper(method),
		pattern:  pattern,
		segments: segments,
		handler:  handler,
	})
	return nil
}

// NotFound replaces the fallback handler.
func (d *Dispatcher) NotFound(handler Handler) {
	if handler != nil {
		d.notFound = handler
	}
}

func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	d.Execute(w, r)
}

func (d *Dispatcher) Execute(w http.ResponseWriter, r *http.Request) {
	tw := &trackingWriter{ResponseWriter: w}
	parts := splitPath(r.URL.Path)

	for _, rt := range d.routes {
		if rt.method != r.Method {
			continue
		}
		values, ok := rt.match(parts)
		if !ok {
			continue
		}
		req := r.WithContext(r.Context())
		for name, value := range values {
			req.SetPathValue(name, value)
		}
		rt.handler.Execute(tw, req)
		if tw.written {
			return
		}
	}
	d.notFound.Execute(tw, r)
}

func (rt route) match(parts []string) (map[string]string, bool) {
	var values map[string]string
	set := func(name, value string) {
		if values == nil {
			values = make(map[string]string)
		}
		values[name] = value
	}

	for i, seg := range rt.segments {
		if seg.rest {
			set(seg.param, strings.Join(parts[i:], "/"))
			return values, true
		}
		if i >= len(parts) {
			return nil, false
		}
		if seg.param != "" {
			if parts[i] == "" {
				return nil, false
			}
			set(seg.param, parts[i])
			continue
		}
		if seg.literal != parts[i] {
			return nil, false
		}
	}
	if len(parts) != len(rt.segments) {
		return nil, false
	}
	return values, true
}

// splitPath turns "/a/b" into ["a" "b"] and "/" into [].
func splitPath(path string) []string {
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

// trackingWriter records whether a handler produced a response.
type trackingWriter struct {
	http.ResponseWriter
	written bool
}

func (t *trackingWriter) WriteHeader(code int) {
	t.written = true
	t.ResponseWriter.WriteHeader(code)
}

func (t *trackingWriter) Write(b []byte) (int, error) {
	t.written = true
	return t.ResponseWriter.Write(b)
}

func (t *trackingWriter) Unwrap() http.ResponseWriter {
	return t.ResponseWriter
}
