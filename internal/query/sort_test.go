package query

import (
	"testing"
	"time"

	"taskboard/internal/domain"
)

func TestSortByTimestamps(t *testing.T) {
	tasks := []domain.Task{
		mkTask(3, "c", domain.PriorityLow),
		mkTask(1, "a", domain.PriorityLow),
		mkTask(2, "b", domain.PriorityLow),
	}
	// mkTask stamps created/updated from the id
	wantIDs(t, SortTasks(tasks, SortCreatedAt, Asc), 1, 2, 3)
	wantIDs(t, SortTasks(tasks, SortCreatedAt, Desc), 3, 2, 1)
	wantIDs(t, SortTasks(tasks, SortUpdatedAt, Asc), 1, 2, 3)
}

func TestSortByPriorityRank(t *testing.T) {
	tasks := []domain.Task{
		mkTask(1, "a", domain.PriorityMedium),
		mkTask(2, "b", domain.PriorityUrgent),
		mkTask(3, "c", domain.PriorityLow),
		mkTask(4, "d", domain.PriorityHigh),
	}
	wantIDs(t, SortTasks(tasks, SortPriority, Asc), 3, 1, 4, 2)
	wantIDs(t, SortTasks(tasks, SortPriority, Desc), 2, 4, 1, 3)
}

func TestSortByTitleIgnoresCase(t *testing.T) {
	tasks := []domain.Task{
		mkTask(1, "Banana", domain.PriorityLow),
		mkTask(2, "apple", domain.PriorityLow),
		mkTask(3, "Cherry", domain.PriorityLow),
	}
	wantIDs(t, SortTasks(tasks, SortTitle, Asc), 2, 1, 3)
	wantIDs(t, SortTasks(tasks, SortTitle, Desc), 3, 1, 2)
}

// Tasks without a deadline sort as if their deadline were infinitely
// far out: last ascending, first descending.
func TestSortByDeadlinePlacesUndatedLast(t *testing.T) {
	tasks := []domain.Task{
		mkTask(1, "undated", domain.PriorityLow),
		withDue(mkTask(2, "later", domain.PriorityLow), base.Add(48*time.Hour)),
		withDue(mkTask(3, "sooner", domain.PriorityLow), base.Add(time.Hour)),
		mkTask(4, "also undated", domain.PriorityLow),
	}
	wantIDs(t, SortTasks(tasks, SortDeadline, Asc), 3, 2, 1, 4)
	wantIDs(t, SortTasks(tasks, SortDeadline, Desc), 1, 4, 2, 3)
}

func TestSortStabilityOnEqualKeys(t *testing.T) {
	tasks := []domain.Task{
		mkTask(1, "a", domain.PriorityHigh),
		mkTask(2, "b", domain.PriorityHigh),
		mkTask(3, "c", domain.PriorityHigh),
	}
	// every key equal: both directions must keep input order
	wantIDs(t, SortTasks(tasks, SortPriority, Asc), 1, 2, 3)
	wantIDs(t, SortTasks(tasks, SortPriority, Desc), 1, 2, 3)
}

func TestSortDoesNotMutateInput(t *testing.T) {
	tasks := []domain.Task{
		mkTask(2, "b", domain.PriorityLow),
		mkTask(1, "a", domain.PriorityLow),
	}
	SortTasks(tasks, SortCreatedAt, Asc)
	wantIDs(t, tasks, 2, 1)
}
