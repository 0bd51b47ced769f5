// Package query is the task query engine: it filters, sorts and
// paginates an in-memory snapshot of one user's tasks. Every function
// is pure (inputs are never mutated, results are fresh slices), so
// repeated calls over the same snapshot are deterministic.
package query

import (
	"errors"
	"fmt"
	"time"

	"taskboard/internal/domain"
)

// ErrInvalidQuery marks query parameters rejected at the boundary.
// Handlers translate it to a 400; the engine itself never sees
// malformed parameters.
var ErrInvalidQuery = errors.New("invalid query")

// SortField selects the task attribute that drives ordering.
type SortField string

const (
	SortCreatedAt SortField = "created_at"
	SortUpdatedAt SortField = "updated_at"
	SortDeadline  SortField = "deadline"
	SortPriority  SortField = "priority"
	SortTitle     SortField = "title"
)

// Order is the sort direction.
type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Params describes one query: which tasks to keep, how to order them,
// and which page of the result to return. A nil filter field imposes
// no constraint.
type Params struct {
	Completed *bool
	Priority  *domain.Priority
	DueAfter  *time.Time
	DueBefore *time.Time

	SortBy SortField
	Order  Order

	Page  int
	Limit int
}

// DefaultParams is what an empty query means: newest first, first
// page of ten.
func DefaultParams() Params {
	return Params{
		SortBy: SortCreatedAt,
		Order:  Desc,
		Page:   1,
		Limit:  DefaultLimit,
	}
}

// Validate checks enum membership and range bounds. Violations are
// reported wrapped around ErrInvalidQuery so callers can errors.Is
// them as a class.
func (p Params) Validate() error {
	switch p.SortBy {
	case SortCreatedAt, SortUpdatedAt, SortDeadline, SortPriority, SortTitle:
	default:
		return fmt.Errorf("%w: unknown sort_by %q", ErrInvalidQuery, p.SortBy)
	}
	switch p.Order {
	case Asc, Desc:
	default:
		return fmt.Errorf("%w: unknown order %q", ErrInvalidQuery, p.Order)
	}
	if p.Priority != nil && !p.Priority.Valid() {
		return fmt.Errorf("%w: unknown priority %q", ErrInvalidQuery, *p.Priority)
	}
	if p.Page < 1 {
		return fmt.Errorf("%w: page must be >= 1, got %d", ErrInvalidQuery, p.Page)
	}
	if p.Limit < 1 || p.Limit > MaxLimit {
		return fmt.Errorf("%w: limit must be in [1,%d], got %d", ErrInvalidQuery, MaxLimit, p.Limit)
	}
	return nil
}
