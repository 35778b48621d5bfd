package reservoir

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Record and Collection operations.
var (
	// ErrIndexOutOfRange is returned when a position is outside 0..Len()-1.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrCollectionFull is returned by Add and Duplicate at capacity.
	ErrCollectionFull = errors.New("collection full")

	// ErrTypeMismatch is returned when two records of different kinds are compared.
	ErrTypeMismatch = errors.New("reservoirs of different kinds are not comparable")

	// ErrNotFound is returned when no record matches a kind query.
	ErrNotFound = errors.New("no reservoirs found")

	// ErrInvalidRecord wraps every construction-time validation failure.
	ErrInvalidRecord = errors.New("invalid reservoir")

	ErrEmptyName        = errors.New("name is empty")
	ErrNameTooLong      = errors.New("text exceeds maximum length")
	ErrInvalidDimension = errors.New("dimension must be a finite non-negative number")
)

// IndexError reports a rejected position together with the collection size
// at the time of the call.
type IndexError struct {
	Position int
	Size     int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("position %d: %v (size %d)", e.Position, ErrIndexOutOfRange, e.Size)
}

// Unwrap lets errors.Is match ErrIndexOutOfRange.
func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// invalid wraps a validation cause so that both ErrInvalidRecord and the
// specific cause match with errors.Is.
func invalid(field string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrInvalidRecord, field, cause)
}
