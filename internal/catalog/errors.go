package catalog

import "errors"

// Catalog operation errors. The transport layer maps these onto HTTP
// statuses.
var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrDuplicateUser      = errors.New("user exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrListExists         = errors.New("list exists")
	ErrAlreadyBookmarked  = errors.New("already bookmarked")
)
