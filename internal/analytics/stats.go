package analytics

import (
	"time"

	"taskboard/internal/domain"
	"taskboard/internal/timeutil"
)

// Statistics aggregates one snapshot: counts by state plus the
// completion rate as a percentage in [0,100].
type Statistics struct {
	Total             int
	Completed         int
	Pending           int
	Overdue           int
	CompletionRate    float64
	PriorityBreakdown map[domain.Priority]int
}

// Stats computes Statistics over tasks at the reference time now.
// Overdue counts incomplete tasks whose deadline has passed, the same
// rule GroupByDeadline applies. CompletionRate is completed/total*100
// and 0 for an empty snapshot. The breakdown map always carries all
// four priority keys, zeroes included.
func Stats(tasks []domain.Task, now time.Time) Statistics {
	s := Statistics{
		PriorityBreakdown: make(map[domain.Priority]int, len(domain.Priorities)),
	}
	for _, p := range domain.Priorities {
		s.PriorityBreakdown[p] = 0
	}
	for _, t := range tasks {
		s.Total++
		if t.Completed {
			s.Completed++
		} else {
			s.Pending++
			if t.Deadline != nil && timeutil.IsOverdue(*t.Deadline, now) {
				s.Overdue++
			}
		}
		s.PriorityBreakdown[t.Priority]++
	}
	if s.Total > 0 {
		s.CompletionRate = float64(s.Completed) / float64(s.Total) * 100
	}
	return s
}
