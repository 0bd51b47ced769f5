package domain

import "time"

// User is an account that owns lists and tasks. Every repo query is
// scoped by the user id, so two users never see each other's rows.
// PasswordHash is bcrypt output; only the user service touches it.
type User struct {
	ID           int64
	Username     string
	PasswordHash string

	CreatedAt time.Time
}
