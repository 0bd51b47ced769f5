package repo

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	dom "taskboard/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// In-memory implementations of the repo interfaces. A mutex guards
// every map so concurrent handlers cannot interleave writes. They
// mirror the Postgres semantics (owner scoping, soft delete,
// pgx.ErrNoRows for missing rows), which lets the services run on
// either backend unchanged. Tests build on these; the app itself can
// too (STORE=memory).

type MemTaskRepo struct {
	mu    sync.RWMutex
	seq   int64
	tasks map[int64]dom.Task
}

func NewMemTaskRepo() *MemTaskRepo {
	return &MemTaskRepo{tasks: make(map[int64]dom.Task)}
}

func (r *MemTaskRepo) Create(_ context.Context, t dom.Task) (dom.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	now := time.Now().UTC()
	t.ID = r.seq
	t.Completed = false
	t.CompletedAt = nil
	t.DeletedAt = nil
	t.CreatedAt = now
	t.UpdatedAt = now
	r.tasks[t.ID] = t
	return t, nil
}

func (r *MemTaskRepo) GetByID(_ context.Context, ownerID, id int64) (dom.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tasks[id]
	if !ok || t.DeletedAt != nil || t.OwnerID != ownerID {
		return dom.Task{}, pgx.ErrNoRows
	}
	return t, nil
}

func (r *MemTaskRepo) ListByOwner(_ context.Context, ownerID int64, listID *int64) ([]dom.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []dom.Task
	for _, t := range r.tasks {
		if t.DeletedAt != nil || t.OwnerID != ownerID {
			continue
		}
		if listID != nil && t.ListID != *listID {
			continue
		}
		list = append(list, t)
	}
	sortNewestFirst(list)
	return list, nil
}

func (r *MemTaskRepo) Update(_ context.Context, ownerID, id int64, patch dom.Task) (dom.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.tasks[id]
	if !ok || cur.DeletedAt != nil || cur.OwnerID != ownerID {
		return dom.Task{}, pgx.ErrNoRows
	}
	now := time.Now().UTC()
	applyDone(&cur, patch.Completed, now)
	cur.Title = patch.Title
	cur.Description = patch.Description
	cur.Priority = patch.Priority
	cur.Deadline = patch.Deadline
	cur.UpdatedAt = now
	r.tasks[id] = cur
	return cur, nil
}

func (r *MemTaskRepo) SoftDelete(_ context.Context, ownerID, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.tasks[id]
	if !ok || cur.DeletedAt != nil || cur.OwnerID != ownerID {
		return pgx.ErrNoRows
	}
	now := time.Now().UTC()
	cur.DeletedAt = &now
	cur.UpdatedAt = now
	r.tasks[id] = cur
	return nil
}

func (r *MemTaskRepo) MarkDone(_ context.Context, ownerID, id int64, done bool) (dom.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.tasks[id]
	if !ok || cur.DeletedAt != nil || cur.OwnerID != ownerID {
		return dom.Task{}, pgx.ErrNoRows
	}
	now := time.Now().UTC()
	applyDone(&cur, done, now)
	cur.UpdatedAt = now
	r.tasks[id] = cur
	return cur, nil
}

func (r *MemTaskRepo) Search(_ context.Context, ownerID int64, q string) ([]dom.Task, error) {
	needle := strings.ToLower(q)
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []dom.Task
	for _, t := range r.tasks {
		if t.DeletedAt != nil || t.OwnerID != ownerID {
			continue
		}
		if strings.Contains(strings.ToLower(t.Title), needle) ||
			strings.Contains(strings.ToLower(t.Description), needle) {
			list = append(list, t)
		}
	}
	sortNewestFirst(list)
	return list, nil
}

// deleteByList backs the list-delete cascade.
func (r *MemTaskRepo) deleteByList(ownerID, listID int64, at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, t := range r.tasks {
		if t.DeletedAt == nil && t.OwnerID == ownerID && t.ListID == listID {
			t.DeletedAt = &at
			t.UpdatedAt = at
			r.tasks[id] = t
		}
	}
}

// applyDone mirrors the SQL CASE in the Postgres repo: completing an
// already-completed task keeps its stamp, a fresh completion stamps
// now, reopening clears it.
func applyDone(t *dom.Task, done bool, now time.Time) {
	switch {
	case done && t.Completed:
	case done:
		t.CompletedAt = &now
	default:
		t.CompletedAt = nil
	}
	t.Completed = done
}

func sortNewestFirst(list []dom.Task) {
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID > list[j].ID
	})
}

type MemListRepo struct {
	mu    sync.RWMutex
	seq   int64
	lists map[int64]dom.List
	tasks *MemTaskRepo // delete cascade target, may be nil
}

func NewMemListRepo(tasks *MemTaskRepo) *MemListRepo {
	return &MemListRepo{lists: make(map[int64]dom.List), tasks: tasks}
}

func (r *MemListRepo) Create(_ context.Context, l dom.List) (dom.List, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	now := time.Now().UTC()
	l.ID = r.seq
	l.DeletedAt = nil
	l.CreatedAt = now
	l.UpdatedAt = now
	r.lists[l.ID] = l
	return l, nil
}

func (r *MemListRepo) GetByID(_ context.Context, ownerID, id int64) (dom.List, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.lists[id]
	if !ok || l.DeletedAt != nil || l.OwnerID != ownerID {
		return dom.List{}, pgx.ErrNoRows
	}
	return l, nil
}

func (r *MemListRepo) ListByOwner(_ context.Context, ownerID int64) ([]dom.List, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []dom.List
	for _, l := range r.lists {
		if l.DeletedAt == nil && l.OwnerID == ownerID {
			list = append(list, l)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID > list[j].ID
	})
	return list, nil
}

func (r *MemListRepo) Update(_ context.Context, ownerID, id int64, patch dom.List) (dom.List, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.lists[id]
	if !ok || cur.DeletedAt != nil || cur.OwnerID != ownerID {
		return dom.List{}, pgx.ErrNoRows
	}
	cur.Title = patch.Title
	cur.Description = patch.Description
	cur.UpdatedAt = time.Now().UTC()
	r.lists[id] = cur
	return cur, nil
}

func (r *MemListRepo) SoftDelete(_ context.Context, ownerID, id int64) error {
	r.mu.Lock()
	cur, ok := r.lists[id]
	if !ok || cur.DeletedAt != nil || cur.OwnerID != ownerID {
		r.mu.Unlock()
		return pgx.ErrNoRows
	}
	now := time.Now().UTC()
	cur.DeletedAt = &now
	cur.UpdatedAt = now
	r.lists[id] = cur
	r.mu.Unlock()

	if r.tasks != nil {
		r.tasks.deleteByList(ownerID, id, now)
	}
	return nil
}

type MemUserRepo struct {
	mu    sync.RWMutex
	seq   int64
	users map[int64]dom.User
}

func NewMemUserRepo() *MemUserRepo {
	return &MemUserRepo{users: make(map[int64]dom.User)}
}

func (r *MemUserRepo) Create(_ context.Context, username, passwordHash string) (dom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			// same class of error the driver raises on the unique index
			return dom.User{}, &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}
		}
	}
	r.seq++
	u := dom.User{
		ID:           r.seq,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	r.users[u.ID] = u
	return u, nil
}

func (r *MemUserRepo) GetByID(_ context.Context, id int64) (dom.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (r *MemUserRepo) GetByUsername(_ context.Context, username string) (dom.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return dom.User{}, pgx.ErrNoRows
}
