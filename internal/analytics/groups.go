// Package analytics computes groupings, aggregate statistics and
// productivity insights over task snapshots. Like the query engine it
// is pure: collections in, fresh result structures out, nothing
// mutated and nothing retained between calls.
package analytics

import (
	"time"

	"taskboard/internal/domain"
	"taskboard/internal/timeutil"
)

// DeadlineGroups partitions incomplete tasks by deadline proximity.
// The buckets are disjoint: every incomplete task lands in exactly
// one of them.
type DeadlineGroups struct {
	Overdue    []domain.Task
	Today      []domain.Task
	Tomorrow   []domain.Task
	ThisWeek   []domain.Task
	Later      []domain.Task
	NoDeadline []domain.Task
}

// GroupByDeadline classifies each incomplete task by how close its
// deadline is to now. Completed tasks are left out entirely. The
// first matching rule wins: overdue (deadline already passed), then
// today, then tomorrow, then this week (within the next seven days),
// then later. A deadline earlier today that has already passed is
// overdue, not today.
func GroupByDeadline(tasks []domain.Task, now time.Time) DeadlineGroups {
	var g DeadlineGroups
	for _, t := range tasks {
		if t.Completed {
			continue
		}
		if t.Deadline == nil {
			g.NoDeadline = append(g.NoDeadline, t)
			continue
		}
		d := *t.Deadline
		switch {
		case timeutil.IsOverdue(d, now):
			g.Overdue = append(g.Overdue, t)
		case timeutil.IsToday(d, now):
			g.Today = append(g.Today, t)
		case timeutil.IsTomorrow(d, now):
			g.Tomorrow = append(g.Tomorrow, t)
		case timeutil.WithinWeek(d, now):
			g.ThisWeek = append(g.ThisWeek, t)
		default:
			g.Later = append(g.Later, t)
		}
	}
	return g
}

// CompletionGroups splits tasks by the completed flag.
type CompletionGroups struct {
	Completed []domain.Task
	Pending   []domain.Task
}

func GroupByCompletion(tasks []domain.Task) CompletionGroups {
	var g CompletionGroups
	for _, t := range tasks {
		if t.Completed {
			g.Completed = append(g.Completed, t)
		} else {
			g.Pending = append(g.Pending, t)
		}
	}
	return g
}

// PriorityGroups partitions tasks by priority. Completed tasks are
// included; this is a plain partition on the field value.
type PriorityGroups struct {
	Urgent []domain.Task
	High   []domain.Task
	Medium []domain.Task
	Low    []domain.Task
}

func GroupByPriority(tasks []domain.Task) PriorityGroups {
	var g PriorityGroups
	for _, t := range tasks {
		switch t.Priority {
		case domain.PriorityUrgent:
			g.Urgent = append(g.Urgent, t)
		case domain.PriorityHigh:
			g.High = append(g.High, t)
		case domain.PriorityMedium:
			g.Medium = append(g.Medium, t)
		case domain.PriorityLow:
			g.Low = append(g.Low, t)
		}
	}
	return g
}
