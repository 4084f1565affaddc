package todos

// Action names accepted by Repo.MutateItem.
const (
	ActionChangeStatus      = "changeStatus"
	ActionEditItemObjective = "editItemObjective"
)

// ItemPayload carries the optional values an item action needs.
type ItemPayload struct {
	Objective string
}

// Repo stores each user's todo lists. Every method is scoped to userID and
// never touches another user's data.
type Repo interface {
	// AddList appends a new list and returns its id
	AddList(userID, title, description string) (int, error)

	// Lists returns the user's lists in insertion order
	Lists(userID string) ([]List, error)

	// List returns a single list with its items
	List(userID string, listID int) (List, error)

	UpdateList(userID string, listID int, title string) error
	DeleteList(userID string, listID int) error

	// AddItem appends an item to the list and returns the item id
	AddItem(userID string, listID int, objective string) (int, error)

	// Items returns the list's items in insertion order
	Items(userID string, listID int) ([]Item, error)

	// MutateItem applies a named action to one item
	MutateItem(userID string, listID, itemID int, action string, payload ItemPayload) error

	DeleteItem(userID string, listID, itemID int) error

	// Reset drops all lists for every user
	Reset()
}
