package query

import (
	"testing"

	"taskboard/internal/domain"
)

func fiveTasks() []domain.Task {
	out := make([]domain.Task, 0, 5)
	for i := 1; i <= 5; i++ {
		out = append(out, mkTask(i, "t", domain.PriorityLow))
	}
	return out
}

func TestPaginateFirstPage(t *testing.T) {
	res := Paginate(fiveTasks(), 1, 2)
	wantIDs(t, res.Items, 1, 2)
	if res.Total != 5 || res.TotalPages != 3 {
		t.Fatalf("Total = %d, TotalPages = %d, want 5, 3", res.Total, res.TotalPages)
	}
	if !res.HasNext || res.HasPrev {
		t.Fatalf("HasNext = %v, HasPrev = %v, want true, false", res.HasNext, res.HasPrev)
	}
}

func TestPaginateLastPageClipped(t *testing.T) {
	res := Paginate(fiveTasks(), 3, 2)
	wantIDs(t, res.Items, 5)
	if res.HasNext || !res.HasPrev {
		t.Fatalf("HasNext = %v, HasPrev = %v, want false, true", res.HasNext, res.HasPrev)
	}
}

func TestPaginateExactFit(t *testing.T) {
	res := Paginate(fiveTasks()[:4], 2, 2)
	wantIDs(t, res.Items, 3, 4)
	if res.TotalPages != 2 || res.HasNext {
		t.Fatalf("TotalPages = %d, HasNext = %v, want 2, false", res.TotalPages, res.HasNext)
	}
}

func TestPaginateOutOfRangePage(t *testing.T) {
	res := Paginate(fiveTasks(), 99, 2)
	if len(res.Items) != 0 {
		t.Fatalf("Items = %v, want empty", ids(res.Items))
	}
	if res.Total != 5 || res.TotalPages != 3 {
		t.Fatalf("Total = %d, TotalPages = %d, want 5, 3", res.Total, res.TotalPages)
	}
	if res.HasNext || !res.HasPrev {
		t.Fatalf("HasNext = %v, HasPrev = %v, want false, true", res.HasNext, res.HasPrev)
	}
}

func TestPaginateEmptyCollection(t *testing.T) {
	res := Paginate(nil, 1, 10)
	if res.Items == nil || len(res.Items) != 0 {
		t.Fatalf("Items = %#v, want empty non-nil slice", res.Items)
	}
	if res.Total != 0 || res.TotalPages != 0 {
		t.Fatalf("Total = %d, TotalPages = %d, want 0, 0", res.Total, res.TotalPages)
	}
	if res.HasNext || res.HasPrev {
		t.Fatalf("HasNext = %v, HasPrev = %v, want false, false", res.HasNext, res.HasPrev)
	}
}

func TestPaginateLimitLargerThanTotal(t *testing.T) {
	res := Paginate(fiveTasks(), 1, 50)
	wantIDs(t, res.Items, 1, 2, 3, 4, 5)
	if res.TotalPages != 1 || res.HasNext || res.HasPrev {
		t.Fatalf("TotalPages = %d, HasNext = %v, HasPrev = %v, want 1, false, false",
			res.TotalPages, res.HasNext, res.HasPrev)
	}
}
