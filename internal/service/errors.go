package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"movie_tracker/db"
)

var (
	ErrInvalidMovie         = errors.New("invalid movie")
	ErrInvalidAction        = errors.New("invalid action")
	ErrInvalidRegistration  = errors.New("invalid registration data")
	ErrInvalidRating        = errors.New("rating must be between 1 and 10")
	ErrConflict             = errors.New("concurrent update conflict")
	ErrMovieNotFound        = errors.New("movie not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUsernameTaken        = errors.New("username is already taken")
	ErrEmailTaken           = errors.New("email is already taken")
	ErrRegistrationDisabled = errors.New("registration is disabled")
	ErrConfigsUnavailable   = errors.New("dynamic configs storage is not connected")
	ErrStoreUnavailable     = errors.New("database is not accepting connections")
)

// ValidationError carries per-field messages and unwraps to its sentinel.
type ValidationError struct {
	Err    error
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + " " + e.Fields[k]
	}
	return fmt.Sprintf("%v: %s", e.Err, strings.Join(parts, ", "))
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// translateStoreError maps constraint violations raised by the relational
// store to service errors. Other errors pass through unchanged.
func translateStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case db.IsUniqueViolation(err), db.IsCheckViolation(err):
		return ErrConflict
	case db.IsForeignKeyViolation(err):
		return ErrUserNotFound
	case db.IsConnectionNotAcceptingError(err):
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	default:
		return err
	}
}
