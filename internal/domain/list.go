package domain

import "time"

// List is a named collection of tasks belonging to one user.
// The engine never inspects lists; it only sees the ListID on tasks
// as an opaque grouping key.
type List struct {
	ID          int64
	OwnerID     int64
	Title       string
	Description string

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
