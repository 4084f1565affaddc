package sessions

// Repo defines the interface for session storage operations.
// A user holds at most one session; creating a new one replaces the old.
type Repo interface {
	// Create starts a session for userID and returns its token
	Create(userID string) (string, error)

	// Bind attaches a caller-chosen token to userID
	Bind(sessionID, userID string) error

	// Resolve returns the session bound to sessionID
	Resolve(sessionID string) (Session, error)

	// Destroy removes the session; unknown ids are not an error
	Destroy(sessionID string) error

	// Reset drops every session
	Reset()
}
