package users

type UserRepo interface {
	Upsert(user *User) error
	Get(key string) (*User, error)
	List() ([]*User, error)
	Replace(users map[string]User) error
}
