package service

import (
	"context"
	"errors"
	"testing"
	"time"

	dom "taskboard/internal/domain"
	"taskboard/internal/query"
	"taskboard/internal/repo"
)

var ctx = context.Background()

// testEnv wires the services over in-memory repos with caching off,
// plus one list owned by user 1.
type testEnv struct {
	tasks   *repo.MemTaskRepo
	taskSvc *TaskService
	listSvc *ListService
	listID  int64
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	taskRepo := repo.NewMemTaskRepo()
	listRepo := repo.NewMemListRepo(taskRepo)
	listSvc := NewListService(listRepo, nil)
	l, err := listSvc.Create(ctx, 1, "inbox", "")
	if err != nil {
		t.Fatalf("create list: %v", err)
	}
	return &testEnv{
		tasks:   taskRepo,
		taskSvc: NewTaskService(taskRepo, listRepo, nil),
		listSvc: listSvc,
		listID:  l.ID,
	}
}

func TestCreateDefaultsAndTrims(t *testing.T) {
	env := newTestEnv(t)
	task, err := env.taskSvc.Create(ctx, 1, env.listID, "  Buy milk  ", " from the corner shop ", "", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if task.Title != "Buy milk" || task.Description != "from the corner shop" {
		t.Fatalf("trim failed: %q / %q", task.Title, task.Description)
	}
	if task.Priority != dom.PriorityMedium {
		t.Fatalf("Priority = %s, want medium default", task.Priority)
	}
	if task.Completed || task.CompletedAt != nil {
		t.Fatalf("new task already completed: %+v", task)
	}
}

func TestCreateRejectsPastDeadline(t *testing.T) {
	env := newTestEnv(t)
	past := time.Now().UTC().Add(-time.Hour)
	_, err := env.taskSvc.Create(ctx, 1, env.listID, "late", "", dom.PriorityLow, &past)
	if !errors.Is(err, ErrPastDeadline) {
		t.Fatalf("err = %v, want ErrPastDeadline", err)
	}
}

func TestCreateChecksListOwnership(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.taskSvc.Create(ctx, 2, env.listID, "sneaky", "", "", nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-owner create: err = %v, want ErrNotFound", err)
	}
	if _, err := env.taskSvc.Create(ctx, 1, 999, "lost", "", "", nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown list create: err = %v, want ErrNotFound", err)
	}
}

func TestQueryPipeline(t *testing.T) {
	env := newTestEnv(t)
	for _, pri := range []dom.Priority{dom.PriorityHigh, dom.PriorityHigh, dom.PriorityLow} {
		if _, err := env.taskSvc.Create(ctx, 1, env.listID, "t", "", pri, nil); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	high := dom.PriorityHigh
	p := query.DefaultParams()
	p.Priority = &high
	res, err := env.taskSvc.Query(ctx, 1, nil, p)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if res.Total != 2 || len(res.Items) != 2 {
		t.Fatalf("Total = %d, items = %d, want 2, 2", res.Total, len(res.Items))
	}

	// other users see nothing
	res, err = env.taskSvc.Query(ctx, 2, nil, query.DefaultParams())
	if err != nil || res.Total != 0 {
		t.Fatalf("foreign Query = %+v, %v, want empty", res, err)
	}
}

func TestUpdatePartial(t *testing.T) {
	env := newTestEnv(t)
	due := time.Now().UTC().Add(48 * time.Hour)
	task, err := env.taskSvc.Create(ctx, 1, env.listID, "draft report", "q3 numbers", dom.PriorityHigh, &due)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	title := "final report"
	got, err := env.taskSvc.Update(ctx, 1, task.ID, UpdateTaskInput{Title: &title})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Title != "final report" || got.Description != "q3 numbers" || got.Deadline == nil {
		t.Fatalf("partial update clobbered fields: %+v", got)
	}

	// explicit clear
	got, err = env.taskSvc.Update(ctx, 1, task.ID, UpdateTaskInput{SetDeadline: true})
	if err != nil {
		t.Fatalf("Update clear: %v", err)
	}
	if got.Deadline != nil {
		t.Fatalf("Deadline = %v, want cleared", got.Deadline)
	}

	done := true
	got, err = env.taskSvc.Update(ctx, 1, task.ID, UpdateTaskInput{Completed: &done})
	if err != nil || !got.Completed || got.CompletedAt == nil {
		t.Fatalf("complete via update = %+v, %v", got, err)
	}
}

func TestUpdateRejectsPastDeadline(t *testing.T) {
	env := newTestEnv(t)
	task, _ := env.taskSvc.Create(ctx, 1, env.listID, "t", "", "", nil)
	past := time.Now().UTC().Add(-time.Minute)
	_, err := env.taskSvc.Update(ctx, 1, task.ID, UpdateTaskInput{SetDeadline: true, Deadline: &past})
	if !errors.Is(err, ErrPastDeadline) {
		t.Fatalf("err = %v, want ErrPastDeadline", err)
	}
}

func TestCompleteAndReopen(t *testing.T) {
	env := newTestEnv(t)
	task, _ := env.taskSvc.Create(ctx, 1, env.listID, "flip", "", "", nil)

	done, err := env.taskSvc.Complete(ctx, 1, task.ID)
	if err != nil || !done.Completed || done.CompletedAt == nil {
		t.Fatalf("Complete = %+v, %v", done, err)
	}
	back, err := env.taskSvc.Reopen(ctx, 1, task.ID)
	if err != nil || back.Completed || back.CompletedAt != nil {
		t.Fatalf("Reopen = %+v, %v", back, err)
	}
	if _, err := env.taskSvc.Complete(ctx, 1, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Complete unknown: err = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	env := newTestEnv(t)
	task, _ := env.taskSvc.Create(ctx, 1, env.listID, "gone soon", "", "", nil)

	if err := env.taskSvc.Delete(ctx, 1, task.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := env.taskSvc.GetByID(ctx, 1, task.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetByID after delete: err = %v, want ErrNotFound", err)
	}
	if err := env.taskSvc.Delete(ctx, 1, task.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second Delete: err = %v, want ErrNotFound", err)
	}
}

// Overdue tasks cannot be created through the service (it rejects
// past deadlines), so seed the repo directly the way rows age in
// production.
func TestOverdueAndDueSoon(t *testing.T) {
	env := newTestEnv(t)
	now := time.Now().UTC()

	seed := func(title string, due time.Time) dom.Task {
		t2, err := env.tasks.Create(ctx, dom.Task{
			ListID: env.listID, OwnerID: 1, Title: title,
			Priority: dom.PriorityMedium, Deadline: &due,
		})
		if err != nil {
			t.Fatalf("seed %s: %v", title, err)
		}
		return t2
	}
	older := seed("very late", now.Add(-48*time.Hour))
	late := seed("late", now.Add(-time.Hour))
	soon := seed("soon", now.Add(2*time.Hour))
	seed("next week", now.Add(5*24*time.Hour))

	overdue, err := env.taskSvc.Overdue(ctx, 1, nil)
	if err != nil {
		t.Fatalf("Overdue: %v", err)
	}
	if len(overdue) != 2 || overdue[0].ID != older.ID || overdue[1].ID != late.ID {
		t.Fatalf("Overdue = %v, want [%d %d] soonest first", taskIDs(overdue), older.ID, late.ID)
	}

	dueSoon, err := env.taskSvc.DueSoon(ctx, 1, nil)
	if err != nil {
		t.Fatalf("DueSoon: %v", err)
	}
	if len(dueSoon) != 1 || dueSoon[0].ID != soon.ID {
		t.Fatalf("DueSoon = %v, want [%d]", taskIDs(dueSoon), soon.ID)
	}
}

func TestStatsThroughService(t *testing.T) {
	env := newTestEnv(t)
	a, _ := env.taskSvc.Create(ctx, 1, env.listID, "a", "", "", nil)
	env.taskSvc.Create(ctx, 1, env.listID, "b", "", "", nil)
	if _, err := env.taskSvc.Complete(ctx, 1, a.ID); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	stats, err := env.taskSvc.Stats(ctx, 1, nil)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Total != 2 || stats.Completed != 1 || stats.CompletionRate != 50.0 {
		t.Fatalf("Stats = %+v, want 2 total, 1 completed, 50.0", stats)
	}

	ins, err := env.taskSvc.Productivity(ctx, 1, nil)
	if err != nil {
		t.Fatalf("Productivity: %v", err)
	}
	if ins.CreatedThisWeek != 2 || ins.CompletedThisWeek != 1 || ins.MostProductiveDay == "" {
		t.Fatalf("Productivity = %+v", ins)
	}
}

func TestListScopedAnalytics(t *testing.T) {
	env := newTestEnv(t)
	other, err := env.listSvc.Create(ctx, 1, "work", "")
	if err != nil {
		t.Fatalf("create list: %v", err)
	}
	env.taskSvc.Create(ctx, 1, env.listID, "home chore", "", "", nil)
	env.taskSvc.Create(ctx, 1, other.ID, "work item", "", "", nil)

	stats, err := env.taskSvc.Stats(ctx, 1, &other.ID)
	if err != nil || stats.Total != 1 {
		t.Fatalf("scoped Stats = %+v, %v, want total 1", stats, err)
	}
}

func TestSearchScopedToOwner(t *testing.T) {
	env := newTestEnv(t)
	env.taskSvc.Create(ctx, 1, env.listID, "groceries run", "", "", nil)
	env.tasks.Create(ctx, dom.Task{ListID: 9, OwnerID: 2, Title: "groceries too", Priority: dom.PriorityLow})

	found, err := env.taskSvc.Search(ctx, 1, "groceries")
	if err != nil || len(found) != 1 || found[0].OwnerID != 1 {
		t.Fatalf("Search = %v, %v, want one owned hit", taskIDs(found), err)
	}
}

func taskIDs(tasks []dom.Task) []int64 {
	out := make([]int64, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}
