package models

import (
	"database/sql"
	"time"
)

// User is the persisted shape of a user row. Nullable columns use sql.Null*
// so that absent identities (no email, no LINE id, no password) round-trip
// cleanly through pgx.
type User struct {
	UserID        string         `db:"user_id"`
	Username      sql.NullString `db:"username"`
	PasswordHash  sql.NullString `db:"password_hash"`
	DisplayName   string         `db:"display_name"`
	PictureURL    sql.NullString `db:"picture_url"`
	Email         sql.NullString `db:"email"`
	LineUserID    sql.NullString `db:"line_user_id"`
	LoginProvider string         `db:"login_provider"`

	CanReceiveEmail bool `db:"can_receive_email"`
	CanReceiveLine  bool `db:"can_receive_line"`
	CanReceivePush  bool `db:"can_receive_push"`

	GoogleRefreshToken sql.NullString `db:"google_refresh_token"`

	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
