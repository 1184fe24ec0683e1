package repository

import "errors"

// ErrDuplicateUsername is returned by UserRepository.Create when the
// username is already taken. The users table enforces uniqueness, so
// the check is atomic rather than a racy lookup-then-insert.
var ErrDuplicateUsername = errors.New("username already exists")
