package sessions

import "time"

// Session binds an opaque token to a user for the lifetime of the process.
type Session struct {
	ID        string    // Token carried in the sessionid cookie
	UserID    string    // Key of the logged in user
	CreatedAt time.Time // When the session was bound
}
