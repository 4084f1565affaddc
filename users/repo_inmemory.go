package users

import (
	"fmt"
	"sort"
	"sync"

	"github.com/jrsteele09/go-todo-server/internal/errors"
)

var _ UserRepo = (*InMemoryRepo)(nil)

type InMemoryRepo struct {
	users map[string]*User
	lock  sync.RWMutex
}

func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		users: make(map[string]*User),
	}
}

func (ur *InMemoryRepo) Upsert(user *User) error {
	if user == nil || user.Key == "" {
		return fmt.Errorf("[users Upsert] user key is required: %w", errors.ErrInvalidRequest)
	}
	ur.lock.Lock()
	defer ur.lock.Unlock()

	u := *user
	ur.users[u.Key] = &u
	return nil
}

// Get returns a copy of the user stored under key
func (ur *InMemoryRepo) Get(key string) (*User, error) {
	ur.lock.RLock()
	defer ur.lock.RUnlock()

	u, ok := ur.users[key]
	if !ok {
		return nil, errors.ErrUserNotFound
	}
	c := *u
	return &c, nil
}

// List returns every user sorted by key
func (ur *InMemoryRepo) List() ([]*User, error) {
	ur.lock.RLock()
	defer ur.lock.RUnlock()

	userList := make([]*User, 0, len(ur.users))
	for _, v := range ur.users {
		c := *v
		userList = append(userList, &c)
	}
	sort.Slice(userList, func(i, j int) bool {
		return userList[i].Key < userList[j].Key
	})
	return userList, nil
}

// Replace swaps the whole user set. Map keys become the user keys.
func (ur *InMemoryRepo) Replace(users map[string]User) error {
	next := make(map[string]*User, len(users))
	for key, u := range users {
		if key == "" {
			return fmt.Errorf("[users Replace] empty user key: %w", errors.ErrInvalidRequest)
		}
		u.Key = key
		next[key] = &u
	}

	ur.lock.Lock()
	defer ur.lock.Unlock()
	ur.users = next
	return nil
}
