package query

import (
	"sort"
	"strings"

	"taskboard/internal/domain"
)

// SortTasks returns a new slice ordered by field in the given
// direction. The sort is stable: tasks with equal keys keep their
// input order under both directions, which makes pagination
// deterministic across repeated calls. Descending reverses the
// comparison itself, not the sorted slice.
//
// A missing deadline compares as +infinity, so tasks without one sort
// after every dated task ascending and before every dated task
// descending.
func SortTasks(tasks []domain.Task, field SortField, order Order) []domain.Task {
	out := make([]domain.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		if order == Desc {
			return taskLess(out[j], out[i], field)
		}
		return taskLess(out[i], out[j], field)
	})
	return out
}

// taskLess orders a before b ascending on the given field. The switch
// is exhaustive over SortField; Validate guarantees no other value
// reaches here.
func taskLess(a, b domain.Task, field SortField) bool {
	switch field {
	case SortCreatedAt:
		return a.CreatedAt.Before(b.CreatedAt)
	case SortUpdatedAt:
		return a.UpdatedAt.Before(b.UpdatedAt)
	case SortDeadline:
		switch {
		case a.Deadline == nil:
			return false
		case b.Deadline == nil:
			return true
		}
		return a.Deadline.Before(*b.Deadline)
	case SortPriority:
		return a.Priority.Rank() < b.Priority.Rank()
	case SortTitle:
		return strings.ToLower(a.Title) < strings.ToLower(b.Title)
	}
	return false
}
