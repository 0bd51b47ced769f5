package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"taskboard/internal/analytics"
	"taskboard/internal/cache"
	dom "taskboard/internal/domain"
	"taskboard/internal/query"
	"taskboard/internal/repo"
	"taskboard/internal/timeutil"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrPastDeadline = errors.New("deadline is in the past")
)

// asNotFound maps a missing row onto the service-level sentinel and
// passes every other error through.
func asNotFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// TaskService owns the task lifecycle and runs the query and
// analytics engines over per-user snapshots. Reads go through the
// cache with singleflight collapsing concurrent loads of the same
// scope; any write invalidates every cached shape for that user.
type TaskService struct {
	tasks repo.TaskRepo
	lists repo.ListRepo
	cache *cache.TaskCache
	sf    singleflight.Group
}

// NewTaskService creates a TaskService. If c is nil, caching is
// disabled.
func NewTaskService(tasks repo.TaskRepo, lists repo.ListRepo, c *cache.TaskCache) *TaskService {
	return &TaskService{tasks: tasks, lists: lists, cache: c}
}

// Create adds a task to one of the caller's lists. The list must
// exist and belong to the caller; a deadline already in the past is
// rejected; an empty priority defaults to medium.
func (s *TaskService) Create(ctx context.Context, ownerID, listID int64, title, desc string, pri dom.Priority, deadline *time.Time) (dom.Task, error) {
	title = strings.TrimSpace(title)
	desc = strings.TrimSpace(desc)
	if pri == "" {
		pri = dom.PriorityMedium
	}
	if deadline != nil && deadline.Before(time.Now().UTC()) {
		return dom.Task{}, ErrPastDeadline
	}
	if _, err := s.lists.GetByID(ctx, ownerID, listID); err != nil {
		return dom.Task{}, asNotFound(err)
	}

	t, err := s.tasks.Create(ctx, dom.Task{
		ListID:      listID,
		OwnerID:     ownerID,
		Title:       title,
		Description: desc,
		Priority:    pri,
		Deadline:    deadline,
	})
	if err != nil {
		return dom.Task{}, err
	}
	s.invalidate(ctx, ownerID)
	return t, nil
}

func (s *TaskService) GetByID(ctx context.Context, ownerID, id int64) (dom.Task, error) {
	t, err := s.tasks.GetByID(ctx, ownerID, id)
	if err != nil {
		return dom.Task{}, asNotFound(err)
	}
	return t, nil
}

// Query runs the filter/sort/paginate pipeline over the caller's
// snapshot. p must already be validated.
func (s *TaskService) Query(ctx context.Context, ownerID int64, listID *int64, p query.Params) (query.Result, error) {
	tasks, err := s.snapshot(ctx, ownerID, listID)
	if err != nil {
		return query.Result{}, err
	}
	return query.Run(tasks, p), nil
}

// UpdateTaskInput carries a partial update; nil fields keep their
// current value. The deadline only changes when SetDeadline is true:
// a nil Deadline then clears it.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Priority    *dom.Priority
	Completed   *bool
	Deadline    *time.Time
	SetDeadline bool
}

func (s *TaskService) Update(ctx context.Context, ownerID, id int64, in UpdateTaskInput) (dom.Task, error) {
	existing, err := s.tasks.GetByID(ctx, ownerID, id)
	if err != nil {
		return dom.Task{}, asNotFound(err)
	}
	patch := existing
	if in.Title != nil {
		patch.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		patch.Description = strings.TrimSpace(*in.Description)
	}
	if in.Priority != nil {
		patch.Priority = *in.Priority
	}
	if in.SetDeadline {
		if in.Deadline != nil && in.Deadline.Before(time.Now().UTC()) {
			return dom.Task{}, ErrPastDeadline
		}
		patch.Deadline = in.Deadline
	}
	if in.Completed != nil {
		patch.Completed = *in.Completed
	}

	t, err := s.tasks.Update(ctx, ownerID, id, patch)
	if err != nil {
		return dom.Task{}, asNotFound(err)
	}
	s.invalidate(ctx, ownerID)
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, ownerID, id int64) error {
	if err := s.tasks.SoftDelete(ctx, ownerID, id); err != nil {
		return asNotFound(err)
	}
	s.invalidate(ctx, ownerID)
	return nil
}

func (s *TaskService) Complete(ctx context.Context, ownerID, id int64) (dom.Task, error) {
	return s.markDone(ctx, ownerID, id, true)
}

func (s *TaskService) Reopen(ctx context.Context, ownerID, id int64) (dom.Task, error) {
	return s.markDone(ctx, ownerID, id, false)
}

func (s *TaskService) markDone(ctx context.Context, ownerID, id int64, done bool) (dom.Task, error) {
	t, err := s.tasks.MarkDone(ctx, ownerID, id, done)
	if err != nil {
		return dom.Task{}, asNotFound(err)
	}
	s.invalidate(ctx, ownerID)
	return t, nil
}

// Search matches q against title and description in the store.
func (s *TaskService) Search(ctx context.Context, ownerID int64, q string) ([]dom.Task, error) {
	q = strings.TrimSpace(q)
	if s.cache == nil {
		return s.tasks.Search(ctx, ownerID, q)
	}
	key := "search:" + strconv.FormatInt(ownerID, 10) + ":" + strings.ToLower(q)
	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		if list, err := s.cache.GetSearch(ctx, ownerID, q); err == nil && list != nil {
			return list, nil
		}
		list, err := s.tasks.Search(ctx, ownerID, q)
		if err != nil {
			return nil, err
		}
		_ = s.cache.SetSearch(ctx, ownerID, q, list)
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]dom.Task), nil
}

// Overdue returns the caller's incomplete tasks whose deadline has
// passed, soonest deadline first.
func (s *TaskService) Overdue(ctx context.Context, ownerID int64, listID *int64) ([]dom.Task, error) {
	tasks, err := s.snapshot(ctx, ownerID, listID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	var out []dom.Task
	for _, t := range tasks {
		if !t.Completed && t.Deadline != nil && timeutil.IsOverdue(*t.Deadline, now) {
			out = append(out, t)
		}
	}
	return query.SortTasks(out, query.SortDeadline, query.Asc), nil
}

// DueSoon returns the caller's incomplete tasks due within the next
// 24 hours, soonest first.
func (s *TaskService) DueSoon(ctx context.Context, ownerID int64, listID *int64) ([]dom.Task, error) {
	tasks, err := s.snapshot(ctx, ownerID, listID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	var out []dom.Task
	for _, t := range tasks {
		if !t.Completed && t.Deadline != nil && timeutil.DueSoon(*t.Deadline, now) {
			out = append(out, t)
		}
	}
	return query.SortTasks(out, query.SortDeadline, query.Asc), nil
}

func (s *TaskService) Stats(ctx context.Context, ownerID int64, listID *int64) (analytics.Statistics, error) {
	tasks, err := s.snapshot(ctx, ownerID, listID)
	if err != nil {
		return analytics.Statistics{}, err
	}
	return analytics.Stats(tasks, time.Now().UTC()), nil
}

func (s *TaskService) Deadlines(ctx context.Context, ownerID int64, listID *int64) (analytics.DeadlineGroups, error) {
	tasks, err := s.snapshot(ctx, ownerID, listID)
	if err != nil {
		return analytics.DeadlineGroups{}, err
	}
	return analytics.GroupByDeadline(tasks, time.Now().UTC()), nil
}

func (s *TaskService) Productivity(ctx context.Context, ownerID int64, listID *int64) (analytics.Insights, error) {
	tasks, err := s.snapshot(ctx, ownerID, listID)
	if err != nil {
		return analytics.Insights{}, err
	}
	return analytics.Productivity(tasks, time.Now().UTC()), nil
}

// snapshot is the coarse fetch everything above builds on: all live
// tasks in the scope, cached per scope, with concurrent loads of the
// same scope collapsed to one query.
func (s *TaskService) snapshot(ctx context.Context, ownerID int64, listID *int64) ([]dom.Task, error) {
	if s.cache == nil {
		return s.tasks.ListByOwner(ctx, ownerID, listID)
	}
	v, err, _ := s.sf.Do(cache.SnapshotKey(ownerID, listID), func() (interface{}, error) {
		if list, err := s.cache.GetSnapshot(ctx, ownerID, listID); err == nil && list != nil {
			return list, nil
		}
		list, err := s.tasks.ListByOwner(ctx, ownerID, listID)
		if err != nil {
			return nil, err
		}
		_ = s.cache.SetSnapshot(ctx, ownerID, listID, list)
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]dom.Task), nil
}

func (s *TaskService) invalidate(ctx context.Context, ownerID int64) {
	if s.cache != nil {
		_ = s.cache.InvalidateOwner(ctx, ownerID)
	}
}
