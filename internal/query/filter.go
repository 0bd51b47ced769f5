package query

import "taskboard/internal/domain"

// Filter returns the tasks satisfying every filter criterion set on
// p. Criteria combine as a conjunction. Due bounds are inclusive on
// both ends; a task without a deadline never satisfies a due bound.
// The result is always a fresh slice, even when no criterion is set.
func Filter(tasks []domain.Task, p Params) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if matches(t, p) {
			out = append(out, t)
		}
	}
	return out
}

func matches(t domain.Task, p Params) bool {
	if p.Completed != nil && t.Completed != *p.Completed {
		return false
	}
	if p.Priority != nil && t.Priority != *p.Priority {
		return false
	}
	if p.DueAfter != nil && (t.Deadline == nil || t.Deadline.Before(*p.DueAfter)) {
		return false
	}
	if p.DueBefore != nil && (t.Deadline == nil || t.Deadline.After(*p.DueBefore)) {
		return false
	}
	return true
}
