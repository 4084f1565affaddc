package users

import "strings"

// User is a profile in the user-identity source. Key is the identity that
// logs in and scopes every todo operation.
type User struct {
	Key       string `toml:"-" json:"key"`
	Username  string `toml:"username" json:"username,omitempty"`
	Name      string `toml:"name" json:"name,omitempty"`
	SessionID string `toml:"session_id" json:"session_id,omitempty"` // Pre-existing session token, if any
}

// DisplayName returns the best human readable name for the user.
func (u *User) DisplayName() string {
	if strings.TrimSpace(u.Name) != "" {
		return u.Name
	}
	if u.Username != "" {
		return u.Username
	}
	return u.Key
}
