package domain

import (
	"fmt"
	"strings"
	"time"
)

// Priority classifies how pressing a task is.
// Total order: urgent > high > medium > low.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Priorities lists all values from most to least pressing.
var Priorities = []Priority{PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow}

// Rank returns the numeric weight used when comparing priorities.
// Unknown values rank 0, below every real priority.
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// Valid reports whether p is one of the known priority values.
func (p Priority) Valid() bool {
	return p.Rank() != 0
}

// ParsePriority converts a raw string (any case, surrounding spaces ok)
// into a Priority.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("unknown priority %q", s)
	}
	return p, nil
}

// Domain entity: the business object, the source of truth.
// Does not depend on Gin, Postgres, Redis.
//
// Task is an immutable snapshot as far as the query and analytics
// engines are concerned: they read collections of tasks and produce
// new collections, they never write back. CompletedAt is set iff
// Completed is true at the time the snapshot was taken; the engines
// trust that and do not re-check it.
type Task struct {
	ID          int64
	ListID      int64
	OwnerID     int64
	Title       string
	Description string
	Completed   bool
	Priority    Priority
	Deadline    *time.Time

	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
	DeletedAt   *time.Time
}
