package model

import (
	"fmt"
	"time"
)

// User represents a row in the `users` table.  Optional columns are
// pointers so that NULL survives the round trip through database/sql.
// The bearer token lives on the user row itself: issuing a token writes
// Token and TokenExpiration, revoking rewinds the expiration.  Expired
// tokens are never purged, only rejected on lookup.
//
// Fields:
//  UserID          – primary key identifier.
//  UserName        – unique login name.
//  Email           – unique when present.
//  FirstName       – optional.
//  LastName        – optional.
//  PasswordHash    – bcrypt hash; plaintext is never stored.
//  Token           – opaque bearer token, unique when present.
//  TokenExpiration – token validity cutoff (UTC).
type User struct {
	UserID          uint64     // users.user_id
	UserName        string     // users.user_name
	Email           *string    // users.email (nullable)
	FirstName       *string    // users.first_name (nullable)
	LastName        *string    // users.last_name (nullable)
	PasswordHash    string     // users.password_hash
	Token           *string    // users.token (nullable)
	TokenExpiration *time.Time // users.token_expiration (nullable)
}

// ApplyUpdate copies over the profile fields present (and non-empty) in the
// input map.  Password changes are not accepted through this path.
func (u *User) ApplyUpdate(fields map[string]any) {
	if v, ok := fields["user_name"].(string); ok && v != "" {
		u.UserName = v
	}
	if v, ok := fields["email"].(string); ok && v != "" {
		u.Email = &v
	}
	if v, ok := fields["first_name"].(string); ok && v != "" {
		u.FirstName = &v
	}
	if v, ok := fields["last_name"].(string); ok && v != "" {
		u.LastName = &v
	}
}

// TokenValidFor reports whether the stored token is still valid at least
// until now+margin.  Login uses it to decide between reusing the current
// token and minting a fresh one.
func (u *User) TokenValidFor(now time.Time, margin time.Duration) bool {
	return u.Token != nil && u.TokenExpiration != nil && u.TokenExpiration.After(now.Add(margin))
}

// UserRepr is the JSON shape of a user resource.  The password hash and
// token never appear here.
type UserRepr struct {
	UserID    uint64  `json:"user_id"`
	UserName  string  `json:"user_name"`
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Links     Links   `json:"_links"`
}

// Representation builds the response body.  Besides self/update it links
// the create operation of every shape collection so that a client holding
// a user can discover the rest of the API.
func (u User) Representation() UserRepr {
	self := fmt.Sprintf("/api/users/%d", u.UserID)
	return UserRepr{
		UserID:    u.UserID,
		UserName:  u.UserName,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Links: Links{
			"self":             self,
			"update":           self,
			"create_rectangle": "/api/rectangles",
			"create_square":    "/api/squares",
			"create_triangle":  "/api/triangles",
			"create_diamond":   "/api/diamonds",
		},
	}
}
