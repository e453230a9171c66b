package service

import (
	"errors"
	"fmt"

	"pathtree/internal/pathtree"
	"pathtree/internal/storage"
)

var (
	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when a requested node is not found.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a write would break path or sibling uniqueness.
	ErrConflict = errors.New("conflict")
	// ErrCorruptTree is returned when stored records do not form a tree.
	ErrCorruptTree = errors.New("corrupt tree")
)

// ValidationError represents a validation error with a field name.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// Is lets callers match any validation failure with ErrInvalidInput.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// classify attaches the service sentinel matching a store or engine error
// while keeping the original error in the chain.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, storage.ErrConstraintViolation):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	case errors.Is(err, pathtree.ErrMalformedSubtree):
		return fmt.Errorf("%w: %w", ErrCorruptTree, err)
	default:
		return err
	}
}
