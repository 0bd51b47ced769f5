package repo

import (
	"context"
	"time"

	dom "taskboard/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ListRepo provides list persistence, owner-scoped like TaskRepo.
type ListRepo interface {
	Create(ctx context.Context, l dom.List) (dom.List, error)
	GetByID(ctx context.Context, ownerID, id int64) (dom.List, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]dom.List, error)
	Update(ctx context.Context, ownerID, id int64, patch dom.List) (dom.List, error)
	SoftDelete(ctx context.Context, ownerID, id int64) error
}

const listCols = `id, owner_id, title, description, created_at, updated_at, deleted_at`

func scanList(row pgx.Row) (dom.List, error) {
	var l dom.List
	err := row.Scan(&l.ID, &l.OwnerID, &l.Title, &l.Description, &l.CreatedAt, &l.UpdatedAt, &l.DeletedAt)
	return l, err
}

type PGListRepo struct {
	db *pgxpool.Pool
}

func NewPGListRepo(db *pgxpool.Pool) *PGListRepo {
	return &PGListRepo{db: db}
}

func (r *PGListRepo) Create(ctx context.Context, l dom.List) (dom.List, error) {
	query := `
		INSERT INTO lists (owner_id, title, description)
		VALUES ($1, $2, $3)
		RETURNING ` + listCols
	return scanList(r.db.QueryRow(ctx, query, l.OwnerID, l.Title, l.Description))
}

func (r *PGListRepo) GetByID(ctx context.Context, ownerID, id int64) (dom.List, error) {
	query := `
		SELECT ` + listCols + `
		FROM lists WHERE id = $2 AND owner_id = $1 AND deleted_at IS NULL`
	return scanList(r.db.QueryRow(ctx, query, ownerID, id))
}

func (r *PGListRepo) ListByOwner(ctx context.Context, ownerID int64) ([]dom.List, error) {
	query := `
		SELECT ` + listCols + `
		FROM lists WHERE owner_id = $1 AND deleted_at IS NULL ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.List
	for rows.Next() {
		l, err := scanList(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

func (r *PGListRepo) Update(ctx context.Context, ownerID, id int64, patch dom.List) (dom.List, error) {
	query := `
		UPDATE lists SET title = $3, description = $4, updated_at = NOW()
		WHERE id = $2 AND owner_id = $1 AND deleted_at IS NULL
		RETURNING ` + listCols
	return scanList(r.db.QueryRow(ctx, query, ownerID, id, patch.Title, patch.Description))
}

// SoftDelete hides the list and all of its tasks in one transaction,
// so a dropped list cannot leave orphaned live tasks behind.
func (r *PGListRepo) SoftDelete(ctx context.Context, ownerID, id int64) error {
	now := time.Now().UTC()
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE lists SET deleted_at = $3, updated_at = $3 WHERE id = $2 AND owner_id = $1 AND deleted_at IS NULL`,
		ownerID, id, now)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	_, err = tx.Exec(ctx,
		`UPDATE tasks SET deleted_at = $3, updated_at = $3 WHERE list_id = $2 AND owner_id = $1 AND deleted_at IS NULL`,
		ownerID, id, now)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}
