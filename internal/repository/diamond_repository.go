package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/geoshapes/shape-api/internal/model"
)

// DiamondRepo encapsulates all database queries for the diamonds table.
type DiamondRepo struct {
	db *sql.DB
}

func NewDiamondRepo(db *sql.DB) *DiamondRepo { return &DiamondRepo{db: db} }

// Create inserts the diamond and populates its ID.
func (r *DiamondRepo) Create(ctx context.Context, d *model.Diamond) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO diamonds (diagonal1, diagonal2, user_id) VALUES (?,?,?)",
		d.Diagonal1, d.Diagonal2, d.UserID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	d.DiamondID = uint64(id)
	return nil
}

// GetByIDAndOwner fetches a diamond only if it belongs to the given user.
func (r *DiamondRepo) GetByIDAndOwner(ctx context.Context, id, ownerID uint64) (*model.Diamond, error) {
	var d model.Diamond
	err := r.db.QueryRowContext(ctx,
		"SELECT diamond_id, diagonal1, diagonal2, user_id FROM diamonds WHERE diamond_id = ? AND user_id = ?",
		id, ownerID).
		Scan(&d.DiamondID, &d.Diagonal1, &d.Diagonal2, &d.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Update writes all geometric fields back, still scoped to the owner.
func (r *DiamondRepo) Update(ctx context.Context, d *model.Diamond) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE diamonds SET diagonal1=?, diagonal2=?, user_id=? WHERE diamond_id=? AND user_id=?",
		d.Diagonal1, d.Diagonal2, d.UserID, d.DiamondID, d.UserID)
	return err
}

// DeleteByIDAndOwner removes the diamond within the owner's scope.
func (r *DiamondRepo) DeleteByIDAndOwner(ctx context.Context, id, ownerID uint64) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM diamonds WHERE diamond_id = ? AND user_id = ?", id, ownerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
