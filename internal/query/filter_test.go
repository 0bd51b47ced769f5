package query

import (
	"testing"
	"time"

	"taskboard/internal/domain"
)

func TestFilterNoCriteriaReturnsAll(t *testing.T) {
	tasks := []domain.Task{
		mkTask(1, "a", domain.PriorityLow),
		withDone(mkTask(2, "b", domain.PriorityHigh)),
	}
	got := Filter(tasks, Params{})
	wantIDs(t, got, 1, 2)

	// fresh slice: growing the result must not reach the input
	got[0].Title = "mutated"
	if tasks[0].Title != "a" {
		t.Fatal("Filter returned a view over the input slice")
	}
}

func TestFilterCompleted(t *testing.T) {
	tasks := []domain.Task{
		mkTask(1, "a", domain.PriorityLow),
		withDone(mkTask(2, "b", domain.PriorityLow)),
		mkTask(3, "c", domain.PriorityLow),
	}

	done := true
	wantIDs(t, Filter(tasks, Params{Completed: &done}), 2)
	pending := false
	wantIDs(t, Filter(tasks, Params{Completed: &pending}), 1, 3)
}

func TestFilterPriority(t *testing.T) {
	tasks := []domain.Task{
		mkTask(1, "a", domain.PriorityUrgent),
		mkTask(2, "b", domain.PriorityLow),
		mkTask(3, "c", domain.PriorityUrgent),
	}
	urgent := domain.PriorityUrgent
	wantIDs(t, Filter(tasks, Params{Priority: &urgent}), 1, 3)
}

func TestFilterDueBounds(t *testing.T) {
	day := 24 * time.Hour
	tasks := []domain.Task{
		withDue(mkTask(1, "yesterday", domain.PriorityLow), base.Add(-day)),
		withDue(mkTask(2, "today", domain.PriorityLow), base),
		withDue(mkTask(3, "next week", domain.PriorityLow), base.Add(7*day)),
		mkTask(4, "undated", domain.PriorityLow),
	}

	tests := []struct {
		name      string
		dueAfter  *time.Time
		dueBefore *time.Time
		want      []int64
	}{
		{"before is inclusive", nil, ptrTime(base), []int64{1, 2}},
		{"after is inclusive", ptrTime(base), nil, []int64{2, 3}},
		{"window", ptrTime(base.Add(-day)), ptrTime(base), []int64{1, 2}},
		{"no dated task matches", ptrTime(base.Add(30 * day)), nil, nil},
	}
	for _, tt := range tests {
		got := Filter(tasks, Params{DueAfter: tt.dueAfter, DueBefore: tt.dueBefore})
		wantIDs(t, got, tt.want...)
	}
}

func TestFilterConjunction(t *testing.T) {
	high := domain.PriorityHigh
	pending := false
	tasks := []domain.Task{
		withDue(mkTask(1, "match", high), base.Add(time.Hour)),
		withDue(withDone(mkTask(2, "completed", high)), base.Add(time.Hour)),
		withDue(mkTask(3, "wrong priority", domain.PriorityLow), base.Add(time.Hour)),
		mkTask(4, "no deadline", high),
	}
	p := Params{
		Completed: &pending,
		Priority:  &high,
		DueAfter:  ptrTime(base),
		DueBefore: ptrTime(base.Add(2 * time.Hour)),
	}
	wantIDs(t, Filter(tasks, p), 1)
}

func ptrTime(t time.Time) *time.Time { return &t }
