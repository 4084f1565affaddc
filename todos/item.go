package todos

// Item is a single objective inside a List. ID is unique within the owning
// list and never reused.
type Item struct {
	ID        int    `json:"id"`
	Objective string `json:"objective"`
	Done      bool   `json:"done"`
}

// ChangeStatus flips Done.
func (i *Item) ChangeStatus() bool {
	i.Done = !i.Done
	return true
}

// ChangeObjective replaces the objective text.
func (i *Item) ChangeObjective(objective string) bool {
	i.Objective = objective
	return true
}
