// Package repository defines sentinel errors shared across repositories so
// that handlers can map failure scenarios onto HTTP statuses without
// inspecting driver errors.  A lookup scoped to the caller's ownership
// returns ErrNotFound both when the row does not exist and when it belongs
// to someone else; the two cases are deliberately indistinguishable.
package repository

import "errors"

// ErrNotFound is returned when no row matches the primary key within the
// caller's ownership scope.  Handlers translate it into HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrUserNameExists is returned when registering or renaming a user to a
// user_name that is already taken.  Handlers translate it into HTTP 400
// with the "please use a different username" message.
var ErrUserNameExists = errors.New("user_name already exists")

// ErrEmailExists is the email counterpart of ErrUserNameExists.
var ErrEmailExists = errors.New("email already exists")
