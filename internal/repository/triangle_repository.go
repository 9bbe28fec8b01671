package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/geoshapes/shape-api/internal/model"
)

// TriangleRepo encapsulates all database queries for the triangles table.
type TriangleRepo struct {
	db *sql.DB
}

func NewTriangleRepo(db *sql.DB) *TriangleRepo { return &TriangleRepo{db: db} }

// Create inserts the triangle and populates its ID.
func (r *TriangleRepo) Create(ctx context.Context, t *model.Triangle) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO triangles (length1, length2, length3, user_id) VALUES (?,?,?,?)",
		t.Length1, t.Length2, t.Length3, t.UserID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.TriangleID = uint64(id)
	return nil
}

// GetByIDAndOwner fetches a triangle only if it belongs to the given user.
func (r *TriangleRepo) GetByIDAndOwner(ctx context.Context, id, ownerID uint64) (*model.Triangle, error) {
	var t model.Triangle
	err := r.db.QueryRowContext(ctx,
		"SELECT triangle_id, length1, length2, length3, user_id FROM triangles WHERE triangle_id = ? AND user_id = ?",
		id, ownerID).
		Scan(&t.TriangleID, &t.Length1, &t.Length2, &t.Length3, &t.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Update writes all geometric fields back, still scoped to the owner.
func (r *TriangleRepo) Update(ctx context.Context, t *model.Triangle) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE triangles SET length1=?, length2=?, length3=?, user_id=? WHERE triangle_id=? AND user_id=?",
		t.Length1, t.Length2, t.Length3, t.UserID, t.TriangleID, t.UserID)
	return err
}

// DeleteByIDAndOwner removes the triangle within the owner's scope.
func (r *TriangleRepo) DeleteByIDAndOwner(ctx context.Context, id, ownerID uint64) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM triangles WHERE triangle_id = ? AND user_id = ?", id, ownerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
