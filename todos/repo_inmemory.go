package todos

import (
	"fmt"
	"sync"

	"github.com/jrsteele09/go-todo-server/internal/errors"
)

var _ Repo = (*InMemoryRepo)(nil)

// userLists holds one user's lists plus the id counter for that user.
type userLists struct {
	lists      []*List
	nextListID int
}

func (u *userLists) find(listID int) (int, *List) {
	for i, l := range u.lists {
		if l.ID == listID {
			return i, l
		}
	}
	return -1, nil
}

// InMemoryRepo is a thread-safe in-memory implementation of Repo
type InMemoryRepo struct {
	mu    sync.RWMutex
	users map[string]*userLists // userID -> lists
}

// NewInMemoryRepo creates an empty todo repository
func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		users: make(map[string]*userLists),
	}
}

// AddList appends a list for userID. List ids start at 1 and are never reused.
func (r *InMemoryRepo) AddList(userID, title, description string) (int, error) {
	if userID == "" {
		return 0, fmt.Errorf("[todos AddList] userID is required: %w", errors.ErrInvalidRequest)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		u = &userLists{}
		r.users[userID] = u
	}
	u.nextListID++
	u.lists = append(u.lists, &List{
		ID:          u.nextListID,
		Title:       title,
		Description: description,
		Items:       []Item{},
	})
	return u.nextListID, nil
}

// Lists returns copies of the user's lists; an unknown user has none.
func (r *InMemoryRepo) Lists(userID string) ([]List, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[userID]
	if !ok {
		return []List{}, nil
	}
	lists := make([]List, 0, len(u.lists))
	for _, l := range u.lists {
		lists = append(lists, l.clone())
	}
	return lists, nil
}

func (r *InMemoryRepo) List(userID string, listID int) (List, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, err := r.list(userID, listID)
	if err != nil {
		return List{}, err
	}
	return l.clone(), nil
}

func (r *InMemoryRepo) UpdateList(userID string, listID int, title string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, err := r.list(userID, listID)
	if err != nil {
		return err
	}
	l.Title = title
	return nil
}

// DeleteList removes the list together with all of its items.
func (r *InMemoryRepo) DeleteList(userID string, listID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return errors.Wrapf(errors.ErrListNotFound, "[todos DeleteList] list %d", listID)
	}
	idx, _ := u.find(listID)
	if idx < 0 {
		return errors.Wrapf(errors.ErrListNotFound, "[todos DeleteList] list %d", listID)
	}
	u.lists = append(u.lists[:idx], u.lists[idx+1:]...)
	return nil
}

// AddItem appends an item. Item ids are allocated per list.
func (r *InMemoryRepo) AddItem(userID string, listID int, objective string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, err := r.list(userID, listID)
	if err != nil {
		return 0, err
	}
	return l.addItem(objective), nil
}

func (r *InMemoryRepo) Items(userID string, listID int) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, err := r.list(userID, listID)
	if err != nil {
		return nil, err
	}
	return l.clone().Items, nil
}

// MutateItem applies action to the item. An unknown action fails with
// ErrUnrecognizedAction before any id is resolved.
func (r *InMemoryRepo) MutateItem(userID string, listID, itemID int, action string, payload ItemPayload) error {
	var apply func(*Item) bool
	switch action {
	case ActionChangeStatus:
		apply = func(it *Item) bool { return it.ChangeStatus() }
	case ActionEditItemObjective:
		apply = func(it *Item) bool { return it.ChangeObjective(payload.Objective) }
	default:
		return errors.Wrapf(errors.ErrUnrecognizedAction, "[todos MutateItem] %q", action)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	l, err := r.list(userID, listID)
	if err != nil {
		return err
	}
	it := l.item(itemID)
	if it == nil {
		return errors.Wrapf(errors.ErrItemNotFound, "[todos MutateItem] list %d item %d", listID, itemID)
	}
	apply(it)
	return nil
}

func (r *InMemoryRepo) DeleteItem(userID string, listID, itemID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, err := r.list(userID, listID)
	if err != nil {
		return err
	}
	if !l.deleteItem(itemID) {
		return errors.Wrapf(errors.ErrItemNotFound, "[todos DeleteItem] list %d item %d", listID, itemID)
	}
	return nil
}

func (r *InMemoryRepo) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = make(map[string]*userLists)
}

// list must be called with r.mu held.
func (r *InMemoryRepo) list(userID string, listID int) (*List, error) {
	u, ok := r.users[userID]
	if !ok {
		return nil, errors.Wrapf(errors.ErrListNotFound, "[todos] list %d", listID)
	}
	_, l := u.find(listID)
	if l == nil {
		return nil, errors.Wrapf(errors.ErrListNotFound, "[todos] list %d", listID)
	}
	return l, nil
}
