package port

import "errors"

// Sentinel errors shared by repositories, usecases and the HTTP adapter.
// Callers wrap them with fmt.Errorf("%w: ...") to add detail.
var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicate          = errors.New("duplicate")
	ErrForbidden          = errors.New("forbidden")
	ErrValidation         = errors.New("validation failed")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrEditWindowClosed   = errors.New("edit window closed")
	ErrDeleteWindowClosed = errors.New("delete window closed")
	ErrBlacklisted        = errors.New("pid is blacklisted")
)
