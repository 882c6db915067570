package database

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrSessionExpired = errors.New("session expired")

func (d *Database) GetSession(ctx context.Context, sessionID string) (*Session, error) {
	var session Session
	err := d.db.GetContext(ctx, &session, "SELECT * FROM sessions WHERE session_id = $1", sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if session.ExpiresAt.Before(time.Now()) {
		return nil, ErrSessionExpired
	}

	return &session, nil
}

func (d *Database) CreateSession(ctx context.Context, session Session) error {
	query := `
		INSERT INTO sessions (session_id, session_token, session_user_id, session_user_name, session_is_admin, session_created_at, session_expires_at)
		VALUES (:session_id, :session_token, :session_user_id, :session_user_name, :session_is_admin, :session_created_at, :session_expires_at)
	`
	_, err := d.db.NamedExecContext(ctx, query, session)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

// UpdateSessionUser refreshes the cached user fields after a profile update.
func (d *Database) UpdateSessionUser(ctx context.Context, sessionID string, userName string, isAdmin bool) error {
	_, err := d.db.ExecContext(ctx, "UPDATE sessions SET session_user_name = $2, session_is_admin = $3 WHERE session_id = $1", sessionID, userName, isAdmin)
	if err != nil {
		return fmt.Errorf("failed to update session user: %w", err)
	}
	return nil
}

func (d *Database) DeleteSession(ctx context.Context, sessionID string) error {
	_, err := d.db.ExecContext(ctx, "DELETE FROM sessions WHERE session_id = $1", sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// DeleteUserSessions removes every session of a user, used when the account
// is deleted.
func (d *Database) DeleteUserSessions(ctx context.Context, userID int) error {
	_, err := d.db.ExecContext(ctx, "DELETE FROM sessions WHERE session_user_id = $1", userID)
	if err != nil {
		return fmt.Errorf("failed to delete user sessions: %w", err)
	}
	return nil
}

func (d *Database) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	res, err := d.db.ExecContext(ctx, "DELETE FROM sessions WHERE session_expires_at < NOW()")
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup expired sessions: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return rows, nil
}
