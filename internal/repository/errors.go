// Package repository provides typed access to the three document
// collections. These sentinel values allow higher layers such as
// workflows to distinguish between different failure scenarios without
// inspecting driver error types. For example, ErrUsernameExists signals
// that an insert hit the unique index on users.username, which the auth
// workflow reports as a validation failure rather than a server error.
package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrUsernameExists is returned when inserting a user whose username is
// already taken. The unique index on users.username raises this even when
// two registrations race past the pre-insert existence check.
var ErrUsernameExists = errors.New("username already exists")

// isDuplicateKey reports whether err is a unique index violation.
func isDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
