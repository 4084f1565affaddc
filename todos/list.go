package todos

// List is a titled collection of items owned by one user. Items keep their
// insertion order.
type List struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Items       []Item `json:"items"`

	nextItemID int
}

func (l *List) addItem(objective string) int {
	l.nextItemID++
	l.Items = append(l.Items, Item{ID: l.nextItemID, Objective: objective})
	return l.nextItemID
}

func (l *List) item(itemID int) *Item {
	for i := range l.Items {
		if l.Items[i].ID == itemID {
			return &l.Items[i]
		}
	}
	return nil
}

func (l *List) deleteItem(itemID int) bool {
	for i := range l.Items {
		if l.Items[i].ID == itemID {
			l.Items = append(l.Items[:i], l.Items[i+1:]...)
			return true
		}
	}
	return false
}

// DoneCount returns the number of finished items.
func (l List) DoneCount() int {
	n := 0
	for _, it := range l.Items {
		if it.Done {
			n++
		}
	}
	return n
}

// clone returns a copy that shares no item storage with l.
func (l *List) clone() List {
	c := *l
	c.Items = make([]Item, len(l.Items))
	copy(c.Items, l.Items)
	return c
}
