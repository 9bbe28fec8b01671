// This file defines persistence for rectangles.  Squares have no table of
// their own: the square resource reads and writes `rectangles` rows through
// this repository, with the length==width invariant enforced above the
// storage layer.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/geoshapes/shape-api/internal/model"
)

// RectangleRepo encapsulates all database queries for the rectangles table.
type RectangleRepo struct {
	db *sql.DB
}

func NewRectangleRepo(db *sql.DB) *RectangleRepo { return &RectangleRepo{db: db} }

// Create inserts the rectangle and populates its ID.
func (r *RectangleRepo) Create(ctx context.Context, rect *model.Rectangle) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO rectangles (length, width, user_id) VALUES (?,?,?)",
		rect.Length, rect.Width, rect.UserID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rect.RectangleID = uint64(id)
	return nil
}

// GetByIDAndOwner fetches a rectangle only if it belongs to the given user.
// A missing row and a row owned by someone else are the same ErrNotFound.
func (r *RectangleRepo) GetByIDAndOwner(ctx context.Context, id, ownerID uint64) (*model.Rectangle, error) {
	var rect model.Rectangle
	err := r.db.QueryRowContext(ctx,
		"SELECT rectangle_id, length, width, user_id FROM rectangles WHERE rectangle_id = ? AND user_id = ?",
		id, ownerID).
		Scan(&rect.RectangleID, &rect.Length, &rect.Width, &rect.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rect, nil
}

// Update writes all geometric fields back, still scoped to the owner.  The
// caller loads the row first, so an affected count of zero is not treated
// as missing here (MySQL reports zero when nothing changed).
func (r *RectangleRepo) Update(ctx context.Context, rect *model.Rectangle) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE rectangles SET length=?, width=?, user_id=? WHERE rectangle_id=? AND user_id=?",
		rect.Length, rect.Width, rect.UserID, rect.RectangleID, rect.UserID)
	return err
}

// DeleteByIDAndOwner removes the rectangle within the owner's scope.
func (r *RectangleRepo) DeleteByIDAndOwner(ctx context.Context, id, ownerID uint64) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM rectangles WHERE rectangle_id = ? AND user_id = ?", id, ownerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
