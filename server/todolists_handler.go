package server

import (
	"net/http"

	"github.com/jrsteele09/go-todo-server/todos"
	"github.com/rs/zerolog/log"
)

const (
	bodySuccess = "success"
	bodyFailed  = "failed"
)

// TodoListsHandler manages the caller's todo lists on /todolists.
type TodoListsHandler struct {
	todos todos.Repo
	pages *Pages
	forms formReader
}

func NewTodoListsHandler(todoRepo todos.Repo, pages *Pages, forms formReader) *TodoListsHandler {
	return &TodoListsHandler{
		todos: todoRepo,
		pages: pages,
		forms: forms,
	}
}

func (h *TodoListsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		redirectSuccess(w, r, RouteLogin)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.list(w, userID)
	case http.MethodPost:
		h.create(w, r, userID)
	case http.MethodPut:
		h.rename(w, r, userID)
	case http.MethodDelete:
		h.delete(w, r, userID)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *TodoListsHandler) list(w http.ResponseWriter, userID string) {
	lists, err := h.todos.Lists(userID)
	if err != nil {
		log.Err(err).Str("user", userID).Msg("Failed to fetch todo lists")
		http.Error(w, "Failed to load todo lists", http.StatusInternalServerError)
		return
	}
	h.pages.render(w, h.pages.lists, http.StatusOK, TodoListsPageData{
		PageData: h.pages.page(userID),
		Lists:    lists,
	})
}

func (h *TodoListsHandler) create(w http.ResponseWriter, r *http.Request, userID string) {
	form, err := h.forms.read(w, r)
	if err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	listID, err := h.todos.AddList(userID, form.Get(FieldTitle), form.Get(FieldDescription))
	if err != nil {
		log.Err(err).Str("user", userID).Msg("Failed to add todo list")
		http.Error(w, "Failed to add todo list", http.StatusInternalServerError)
		return
	}
	log.Debug().Str("user", userID).Int("list", listID).Msg("Todo list added")
	redirectSuccess(w, r, RouteTodoLists)
}

func (h *TodoListsHandler) rename(w http.ResponseWriter, r *http.Request, userID string) {
	form, err := h.forms.read(w, r)
	if err != nil {
		writeText(w, http.StatusOK, bodyFailed)
		return
	}
	listID, err := formID(form, FieldListID)
	if err == nil {
		err = h.todos.UpdateList(userID, listID, form.Get(FieldTitle))
	}
	writeOutcome(w, r, userID, err)
}

func (h *TodoListsHandler) delete(w http.ResponseWriter, r *http.Request, userID string) {
	form, err := h.forms.read(w, r)
	if err != nil {
		writeText(w, http.StatusOK, bodyFailed)
		return
	}
	listID, err := formID(form, FieldListID)
	if err == nil {
		err = h.todos.DeleteList(userID, listID)
	}
	writeOutcome(w, r, userID, err)
}

// writeOutcome answers a mutation with "success" or "failed". The cause of a
// failure is only logged.
func writeOutcome(w http.ResponseWriter, r *http.Request, userID string, err error) {
	if err != nil {
		log.Debug().Err(err).Str("user", userID).Str("method", r.Method).Str("path", r.URL.Path).Msg("Mutation failed")
		writeText(w, http.StatusOK, bodyFailed)
		return
	}
	writeText(w, http.StatusOK, bodySuccess)
}
