package server

import (
	"net/http"

	"github.com/jrsteele09/go-todo-server/internal/errors"
	"github.com/jrsteele09/go-todo-server/todos"
	"github.com/rs/zerolog/log"
)

// TodoListItemHandler manages the items of one list on /todolist/{listId}.
type TodoListItemHandler struct {
	todos todos.Repo
	pages *Pages
	forms formReader
}

func NewTodoListItemHandler(todoRepo todos.Repo, pages *Pages, forms formReader) *TodoListItemHandler {
	return &TodoListItemHandler{
		todos: todoRepo,
		pages: pages,
		forms: forms,
	}
}

func (h *TodoListItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		redirectSuccess(w, r, RouteLogin)
		return
	}
	listID, idErr := parseID(r.PathValue(PathParamListID))

	switch r.Method {
	case http.MethodGet:
		h.show(w, userID, listID)
	case http.MethodPost:
		if idErr != nil {
			redirectSuccess(w, r, RouteTodoLists)
			return
		}
		h.add(w, r, userID, listID)
	case http.MethodPut:
		h.mutate(w, r, userID, listID, idErr)
	case http.MethodDelete:
		h.delete(w, r, userID, listID, idErr)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// show renders the list page. An unknown list renders the empty page.
func (h *TodoListItemHandler) show(w http.ResponseWriter, userID string, listID int) {
	data := TodoListPageData{
		PageData: h.pages.page(userID),
		ListID:   listID,
	}
	list, err := h.todos.List(userID, listID)
	switch {
	case err == nil:
		data.List = list
	case errors.IsNotFound(err):
		log.Debug().Str("user", userID).Int("list", listID).Msg("Todo list not found")
	default:
		log.Err(err).Str("user", userID).Int("list", listID).Msg("Failed to fetch todo list")
		http.Error(w, "Failed to load todo list", http.StatusInternalServerError)
		return
	}
	h.pages.render(w, h.pages.list, http.StatusOK, data)
}

func (h *TodoListItemHandler) add(w http.ResponseWriter, r *http.Request, userID string, listID int) {
	form, err := h.forms.read(w, r)
	if err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}
	if itemID, err := h.todos.AddItem(userID, listID, form.Get(FieldObjective)); err != nil {
		log.Debug().Err(err).Str("user", userID).Int("list", listID).Msg("Failed to add todo item")
	} else {
		log.Debug().Str("user", userID).Int("list", listID).Int("item", itemID).Msg("Todo item added")
	}
	redirectSuccess(w, r, listPath(listID))
}

func (h *TodoListItemHandler) mutate(w http.ResponseWriter, r *http.Request, userID string, listID int, err error) {
	form, readErr := h.forms.read(w, r)
	if readErr != nil {
		writeText(w, http.StatusOK, bodyFailed)
		return
	}

	var itemID int
	if err == nil {
		itemID, err = formID(form, FieldItemID)
	}
	if err == nil {
		err = h.todos.MutateItem(userID, listID, itemID, form.Get(FieldAction), todos.ItemPayload{
			Objective: form.Get(FieldObjective),
		})
	}
	writeOutcome(w, r, userID, err)
}

func (h *TodoListItemHandler) delete(w http.ResponseWriter, r *http.Request, userID string, listID int, err error) {
	form, readErr := h.forms.read(w, r)
	if readErr != nil {
		writeText(w, http.StatusOK, bodyFailed)
		return
	}

	var itemID int
	if err == nil {
		itemID, err = formID(form, FieldItemID)
	}
	if err == nil {
		err = h.todos.DeleteItem(userID, listID, itemID)
	}
	writeOutcome(w, r, userID, err)
}
