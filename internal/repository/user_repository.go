package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/geoshapes/shape-api/internal/model"
	"github.com/geoshapes/shape-api/internal/utils"
)

// tokenReuseMargin is how much remaining validity a token needs for a login
// to hand it back unchanged instead of minting a new one.  This keeps rapid
// repeated logins from churning tokens.
const tokenReuseMargin = 60 * time.Second

const userColumns = "user_id, user_name, email, first_name, last_name, password_hash, token, token_expiration"

// UserRepo encapsulates all database access for users and their bearer
// tokens.  Tokens are columns on the users row, not a separate table.
type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

// Create hashes the password and inserts the user.  Uniqueness of user_name
// and email is checked up front so callers get a specific sentinel, and the
// database unique constraints back the check up under concurrency.
func (r *UserRepo) Create(ctx context.Context, u *model.User, password string, cost int) error {
	if taken, err := r.UserNameInUse(ctx, u.UserName); err != nil {
		return err
	} else if taken {
		return ErrUserNameExists
	}
	if u.Email != nil {
		if taken, err := r.EmailInUse(ctx, *u.Email); err != nil {
			return err
		} else if taken {
			return ErrEmailExists
		}
	}

	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO users (user_name, email, first_name, last_name, password_hash) VALUES (?,?,?,?,?)",
		u.UserName, u.Email, u.FirstName, u.LastName, u.PasswordHash)
	if err != nil {
		return mapUserDuplicate(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	u.UserID = uint64(id)
	return nil
}

// GetByID fetches a user by primary key.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (*model.User, error) {
	return r.getWhere(ctx, "user_id = ?", id)
}

// GetByUserName fetches a user by its unique login name.
func (r *UserRepo) GetByUserName(ctx context.Context, name string) (*model.User, error) {
	return r.getWhere(ctx, "user_name = ?", name)
}

func (r *UserRepo) getWhere(ctx context.Context, cond string, arg any) (*model.User, error) {
	var u model.User
	err := r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE "+cond+" LIMIT 1", arg).
		Scan(&u.UserID, &u.UserName, &u.Email, &u.FirstName, &u.LastName,
			&u.PasswordHash, &u.Token, &u.TokenExpiration)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UserNameInUse reports whether any user already holds the given name.
func (r *UserRepo) UserNameInUse(ctx context.Context, name string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM users WHERE user_name = ?", name).Scan(&n)
	return n > 0, err
}

// EmailInUse reports whether any user already holds the given email.
func (r *UserRepo) EmailInUse(ctx context.Context, email string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM users WHERE email = ?", email).Scan(&n)
	return n > 0, err
}

// Update persists the mutable profile fields.  Duplicate key violations map
// to the same sentinels as Create.
func (r *UserRepo) Update(ctx context.Context, u *model.User) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE users SET user_name=?, email=?, first_name=?, last_name=? WHERE user_id=?",
		u.UserName, u.Email, u.FirstName, u.LastName, u.UserID)
	if err != nil {
		return mapUserDuplicate(err)
	}
	return nil
}

// IssueToken returns a bearer token for the user, valid for ttl.  If the
// stored token still has more than tokenReuseMargin of validity left it is
// returned unchanged and nothing is written.
func (r *UserRepo) IssueToken(ctx context.Context, u *model.User, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	if u.TokenValidFor(now, tokenReuseMargin) {
		return *u.Token, nil
	}
	token, err := utils.NewToken()
	if err != nil {
		return "", err
	}
	exp := now.Add(ttl)
	if _, err := r.db.ExecContext(ctx,
		"UPDATE users SET token=?, token_expiration=? WHERE user_id=?",
		token, exp, u.UserID); err != nil {
		return "", err
	}
	u.Token = &token
	u.TokenExpiration = &exp
	return token, nil
}

// RevokeToken expires the user's token one second in the past.  The token
// value stays in place; FindByToken will reject it from now on.
func (r *UserRepo) RevokeToken(ctx context.Context, userID uint64) error {
	exp := time.Now().UTC().Add(-time.Second)
	_, err := r.db.ExecContext(ctx,
		"UPDATE users SET token_expiration=? WHERE user_id=?", exp, userID)
	return err
}

// FindByToken resolves a bearer token to its user.  Unknown tokens and
// tokens past their expiration both come back as ErrNotFound; expiry is
// checked lazily here rather than by any cleanup job.
func (r *UserRepo) FindByToken(ctx context.Context, token string) (*model.User, error) {
	u, err := r.getWhere(ctx, "token = ?", token)
	if err != nil {
		return nil, err
	}
	if u.TokenExpiration == nil || u.TokenExpiration.Before(time.Now().UTC()) {
		return nil, ErrNotFound
	}
	return u, nil
}

// mapUserDuplicate converts MySQL duplicate-key errors (1062) on the users
// table into the matching sentinel.
func mapUserDuplicate(err error) error {
	msg := err.Error()
	if !strings.Contains(msg, "1062") {
		return err
	}
	if strings.Contains(msg, "email") {
		return ErrEmailExists
	}
	return ErrUserNameExists
}
