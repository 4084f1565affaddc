package server

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/jrsteele09/go-todo-server/todos"
	"github.com/rs/zerolog/log"
)

const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeText = "text/plain; charset=utf-8"

	layoutTemplate = "layout.html"
)

//go:embed templates/*
var templateFiles embed.FS

func TemplateFilesFS() fs.FS {
	subFS, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		panic("Failed to create templates sub filesystem: " + err.Error())
	}
	return subFS
}

// ParseTemplate parses a page together with the shared layout
func ParseTemplate(name string) (*template.Template, error) {
	return template.New(name).ParseFS(TemplateFilesFS(), layoutTemplate, name)
}

// PageData is embedded by every page model
type PageData struct {
	AppName string
	User    string
}

type LoginPageData struct {
	PageData
	Message string
}

type TodoListsPageData struct {
	PageData
	Lists []todos.List
}

type TodoListPageData struct {
	PageData
	ListID int
	List   todos.List
}

// Pages holds the parsed page templates
type Pages struct {
	appName string
	login   *template.Template
	lists   *template.Template
	list    *template.Template
}

func ParsePages(appName string) (*Pages, error) {
	p := &Pages{appName: appName}
	for name, dst := range map[string]**template.Template{
		"login.html":     &p.login,
		"todolists.html": &p.lists,
		"todolist.html":  &p.list,
	} {
		tmpl, err := ParseTemplate(name)
		if err != nil {
			return nil, err
		}
		*dst = tmpl
	}
	return p, nil
}

func (p *Pages) page(user string) PageData {
	return PageData{AppName: p.appName, User: user}
}

// render executes into a buffer first so a template failure never leaves a
// half written page behind.
func (p *Pages) render(w http.ResponseWriter, tmpl *template.Template, status int, data any) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		log.Err(err).Str("template", tmpl.Name()).Msg("Failed to render template")
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// writeText writes a short plain text outcome such as "success" or "failed".
func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", contentTypeText)
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
