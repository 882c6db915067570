package database

import (
	"time"
)

// Session is the only locally stored state: the backend bearer token plus
// enough of the user record to render the page chrome without a profile
// fetch.
type Session struct {
	ID        string    `db:"session_id"`
	Token     string    `db:"session_token"`
	UserID    int       `db:"session_user_id"`
	UserName  string    `db:"session_user_name"`
	IsAdmin   bool      `db:"session_is_admin"`
	CreatedAt time.Time `db:"session_created_at"`
	ExpiresAt time.Time `db:"session_expires_at"`
}

// LoggedIn reports whether the session belongs to an authenticated user.
func (s Session) LoggedIn() bool {
	return s.Token != ""
}
