package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenValidFor(t *testing.T) {
	now := time.Now().UTC()
	token := "abc"

	tests := []struct {
		name string
		user User
		want bool
	}{
		{name: "no token", user: User{}, want: false},
		{
			name: "expires well past the margin",
			user: User{Token: &token, TokenExpiration: expiry(now, 10*time.Minute)},
			want: true,
		},
		{
			name: "expires inside the margin",
			user: User{Token: &token, TokenExpiration: expiry(now, 30*time.Second)},
			want: false,
		},
		{
			name: "already expired",
			user: User{Token: &token, TokenExpiration: expiry(now, -time.Second)},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.TokenValidFor(now, 60*time.Second))
		})
	}
}

func TestUserApplyUpdate(t *testing.T) {
	email := "old@example.com"
	u := User{UserID: 1, UserName: "ana", Email: &email}

	u.ApplyUpdate(map[string]any{"first_name": "Ana", "email": "new@example.com"})
	assert.Equal(t, "ana", u.UserName)
	assert.Equal(t, "new@example.com", *u.Email)
	assert.Equal(t, "Ana", *u.FirstName)
	assert.Nil(t, u.LastName)

	// Empty strings do not clear fields.
	u.ApplyUpdate(map[string]any{"user_name": ""})
	assert.Equal(t, "ana", u.UserName)
}

func TestUserRepresentationHidesCredentials(t *testing.T) {
	token := "secret-token"
	u := User{UserID: 5, UserName: "ana", PasswordHash: "hash", Token: &token}
	repr := u.Representation()

	assert.Equal(t, "/api/users/5", repr.Links["self"])
	assert.Equal(t, "/api/rectangles", repr.Links["create_rectangle"])
	assert.Equal(t, "/api/diamonds", repr.Links["create_diamond"])
}

func expiry(now time.Time, d time.Duration) *time.Time {
	t := now.Add(d)
	return &t
}
