package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by the engine. Callers classify failures with
// errors.Is. A fraud rejection is not an error and never appears here: it is
// reported as a rejected result by the tracking use case.
var (
	// ErrValidation marks malformed or missing input. It is returned before
	// any side effect and is not retriable.
	ErrValidation = errors.New("validation error")
	// ErrInvalidPromotion is returned when a click targets a promotion that
	// is paused, expired or past its expiry timestamp.
	ErrInvalidPromotion = fmt.Errorf("%w: invalid promotion", ErrValidation)
	// ErrNotFound marks a referenced promotion, user, server, setting or
	// reward that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when an operation is attempted on a reward
	// outside of its allowed state.
	ErrConflict = errors.New("conflict")
	// ErrDependency marks an unreachable counter store, ledger or other
	// collaborator. Callers may retry.
	ErrDependency = errors.New("dependency unavailable")
)

// Validation builds an ErrValidation with a formatted detail.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFound builds an ErrNotFound naming the missing entity.
func NotFound(entity string, id any) error {
	return fmt.Errorf("%s %v: %w", entity, id, ErrNotFound)
}

// Conflict builds an ErrConflict with a formatted detail.
func Conflict(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

// Dependency wraps err as an ErrDependency raised while performing op. It
// returns nil for a nil err and leaves already classified errors untouched.
func Dependency(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrDependency) || errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict) {
		return err
	}
	return fmt.Errorf("%s: %w: %w", op, ErrDependency, err)
}
