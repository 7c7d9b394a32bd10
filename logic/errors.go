package logic

import (
	"errors"

	"inkwell/dto"
)

// Error taxonomy of the federation core. Transport failures against
// secondary-tier recipients never surface through these; they are logged
// and the operation still reports OK.
var (
	ErrNotFound       = errors.New("not found")
	ErrUnauthorized   = errors.New("not authorized")
	ErrInvalidRequest = errors.New("invalid request")
	ErrDuplicate      = errors.New("already exists")
	ErrTransport      = errors.New("delivery failed")
)

// ResultOf maps an error to the result kind reported to API callers.
// Storage errors pass through with their own message as generic ERROR.
func ResultOf(err error) dto.ResultType {
	switch {
	case err == nil:
		return dto.ResultOk
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrDuplicate):
		return dto.ResultError400
	case errors.Is(err, ErrUnauthorized):
		return dto.ResultError401
	default:
		return dto.ResultError
	}
}
