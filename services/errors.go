package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound signals a lookup miss for a record that was expected
	// to exist (update/typed get). Plain Get misses return it too so
	// callers can distinguish "no entry yet" from a store failure.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEntry signals a create that collided with the
	// (user, date) uniqueness key.
	ErrDuplicateEntry = errors.New("record already exists")

	// ErrStoreUnavailable wraps any database error that is not a
	// normal miss or key collision. It must never be conflated with
	// ErrNotFound: a failed round trip says nothing about existence.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValidationError names the input field that failed domain validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalidField(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// storeErr maps a gorm error onto the service error taxonomy.
func storeErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateEntry
	default:
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
}

