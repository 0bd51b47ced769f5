package analytics

import (
	"time"

	"taskboard/internal/domain"
	"taskboard/internal/timeutil"
)

// Trend classifies the direction of recent completion volume.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// Insights summarizes recent activity over rolling windows anchored
// at the reference time.
type Insights struct {
	CreatedThisWeek      int
	CompletedThisWeek    int
	CompletedThisMonth   int
	WeeklyCompletionRate float64
	AverageTasksPerDay   float64
	MostProductiveDay    string
	CompletionTrend      Trend
}

// Productivity computes Insights over tasks. "This week" and "this
// month" are rolling windows, [now-7d, now] and [now-30d, now], not
// calendar periods. The trend compares the previous week's
// completions, [now-14d, now-7d), against this week's: strictly more
// now is improving, strictly fewer is declining, anything else is
// stable.
//
// MostProductiveDay is the weekday with the most completions this
// week; ties go to the earlier weekday (Sunday first) and it stays
// empty when the window has no completions at all.
func Productivity(tasks []domain.Task, now time.Time) Insights {
	weekAgo := now.Add(-timeutil.Week)
	monthAgo := now.Add(-30 * timeutil.Day)
	twoWeeksAgo := now.Add(-2 * timeutil.Week)

	var ins Insights
	var prevWeek int
	var byWeekday [7]int
	for _, t := range tasks {
		if timeutil.Between(t.CreatedAt, weekAgo, now) {
			ins.CreatedThisWeek++
		}
		if !t.Completed || t.CompletedAt == nil {
			continue
		}
		done := *t.CompletedAt
		if timeutil.Between(done, weekAgo, now) {
			ins.CompletedThisWeek++
			byWeekday[int(done.UTC().Weekday())]++
		} else if !done.Before(twoWeeksAgo) && done.Before(weekAgo) {
			prevWeek++
		}
		if timeutil.Between(done, monthAgo, now) {
			ins.CompletedThisMonth++
		}
	}

	if ins.CreatedThisWeek > 0 {
		ins.WeeklyCompletionRate = float64(ins.CompletedThisWeek) / float64(ins.CreatedThisWeek) * 100
	}
	ins.AverageTasksPerDay = float64(ins.CreatedThisWeek) / 7

	best, bestCount := -1, 0
	for day, n := range byWeekday {
		if n > bestCount {
			best, bestCount = day, n
		}
	}
	if best >= 0 {
		ins.MostProductiveDay = time.Weekday(best).String()
	}

	switch {
	case ins.CompletedThisWeek > prevWeek:
		ins.CompletionTrend = TrendImproving
	case ins.CompletedThisWeek < prevWeek:
		ins.CompletionTrend = TrendDeclining
	default:
		ins.CompletionTrend = TrendStable
	}
	return ins
}
