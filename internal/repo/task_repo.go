package repo

import (
	"context"
	"time"

	dom "taskboard/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TaskRepo provides task persistence. Every method is scoped by the
// owning user; a row belonging to someone else behaves exactly like a
// missing row.
type TaskRepo interface {
	Create(ctx context.Context, t dom.Task) (dom.Task, error)
	GetByID(ctx context.Context, ownerID, id int64) (dom.Task, error)
	ListByOwner(ctx context.Context, ownerID int64, listID *int64) ([]dom.Task, error)
	Update(ctx context.Context, ownerID, id int64, patch dom.Task) (dom.Task, error)
	SoftDelete(ctx context.Context, ownerID, id int64) error
	MarkDone(ctx context.Context, ownerID, id int64, done bool) (dom.Task, error)
	Search(ctx context.Context, ownerID int64, q string) ([]dom.Task, error)
}

const taskCols = `id, list_id, owner_id, title, description, completed, priority, deadline, created_at, updated_at, completed_at, deleted_at`

func scanTask(row pgx.Row) (dom.Task, error) {
	var t dom.Task
	err := row.Scan(
		&t.ID, &t.ListID, &t.OwnerID, &t.Title, &t.Description, &t.Completed,
		&t.Priority, &t.Deadline, &t.CreatedAt, &t.UpdatedAt, &t.CompletedAt, &t.DeletedAt,
	)
	return t, err
}

func collectTasks(rows pgx.Rows) ([]dom.Task, error) {
	defer rows.Close()
	var list []dom.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

type PGTaskRepo struct {
	db *pgxpool.Pool
}

func NewPGTaskRepo(db *pgxpool.Pool) *PGTaskRepo {
	return &PGTaskRepo{db: db}
}

func (r *PGTaskRepo) Create(ctx context.Context, t dom.Task) (dom.Task, error) {
	query := `
		INSERT INTO tasks (list_id, owner_id, title, description, priority, deadline)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + taskCols
	return scanTask(r.db.QueryRow(ctx, query,
		t.ListID, t.OwnerID, t.Title, t.Description, t.Priority, t.Deadline))
}

func (r *PGTaskRepo) GetByID(ctx context.Context, ownerID, id int64) (dom.Task, error) {
	query := `
		SELECT ` + taskCols + `
		FROM tasks WHERE id = $2 AND owner_id = $1 AND deleted_at IS NULL`
	return scanTask(r.db.QueryRow(ctx, query, ownerID, id))
}

// ListByOwner is the coarse snapshot fetch the query and analytics
// engines build on: all live tasks of one user, optionally narrowed
// to a single list. Fine-grained filtering happens in memory.
func (r *PGTaskRepo) ListByOwner(ctx context.Context, ownerID int64, listID *int64) ([]dom.Task, error) {
	query := `
		SELECT ` + taskCols + `
		FROM tasks WHERE owner_id = $1 AND deleted_at IS NULL`
	args := []any{ownerID}
	if listID != nil {
		query += ` AND list_id = $2`
		args = append(args, *listID)
	}
	query += ` ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectTasks(rows)
}

// Update writes the merged patch. The completed_at CASE reads the
// pre-update row: an already-completed task keeps its original stamp,
// a fresh completion gets NOW(), reopening clears it.
func (r *PGTaskRepo) Update(ctx context.Context, ownerID, id int64, patch dom.Task) (dom.Task, error) {
	query := `
		UPDATE tasks SET title = $3, description = $4, priority = $5, deadline = $6, completed = $7,
			completed_at = CASE WHEN $7 AND completed THEN completed_at WHEN $7 THEN NOW() ELSE NULL END,
			updated_at = NOW()
		WHERE id = $2 AND owner_id = $1 AND deleted_at IS NULL
		RETURNING ` + taskCols
	return scanTask(r.db.QueryRow(ctx, query,
		ownerID, id, patch.Title, patch.Description, patch.Priority, patch.Deadline, patch.Completed))
}

func (r *PGTaskRepo) SoftDelete(ctx context.Context, ownerID, id int64) error {
	now := time.Now().UTC()
	tag, err := r.db.Exec(ctx,
		`UPDATE tasks SET deleted_at = $3, updated_at = $3 WHERE id = $2 AND owner_id = $1 AND deleted_at IS NULL`,
		ownerID, id, now)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PGTaskRepo) MarkDone(ctx context.Context, ownerID, id int64, done bool) (dom.Task, error) {
	query := `
		UPDATE tasks SET completed = $3,
			completed_at = CASE WHEN $3 AND completed THEN completed_at WHEN $3 THEN NOW() ELSE NULL END,
			updated_at = NOW()
		WHERE id = $2 AND owner_id = $1 AND deleted_at IS NULL
		RETURNING ` + taskCols
	return scanTask(r.db.QueryRow(ctx, query, ownerID, id, done))
}

func (r *PGTaskRepo) Search(ctx context.Context, ownerID int64, q string) ([]dom.Task, error) {
	pattern := "%" + q + "%"
	query := `
		SELECT ` + taskCols + `
		FROM tasks WHERE owner_id = $1 AND deleted_at IS NULL AND (title ILIKE $2 OR description ILIKE $2)
		ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, query, ownerID, pattern)
	if err != nil {
		return nil, err
	}
	return collectTasks(rows)
}
