package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Sentinel errors for the outcomes a caller is expected to distinguish.
// Handlers map these onto HTTP status codes with the Is* helpers below.
var (
	ErrMissingField  = errors.New("required field missing")
	ErrInvalidRating = errors.New("rating must be an integer between 1 and 5")

	ErrCollegeNotFound = errors.New("college not found")
	ErrEventNotFound   = errors.New("event not found")
	ErrStudentNotFound = errors.New("student not found")

	ErrDuplicateID       = errors.New("id already exists")
	ErrAlreadyRegistered = errors.New("student already registered for this event")
	ErrAlreadyAttended   = errors.New("attendance already marked")
	ErrFeedbackExists    = errors.New("feedback already submitted for this student on this event")

	ErrEventCancelled  = errors.New("event is cancelled")
	ErrCapacityReached = errors.New("event capacity reached")
	ErrNotRegistered   = errors.New("student not registered for this event")
)

// IsValidation reports whether err is a malformed-input failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrMissingField) || errors.Is(err, ErrInvalidRating)
}

// IsNotFound reports whether err means a referenced entity is absent.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCollegeNotFound) ||
		errors.Is(err, ErrEventNotFound) ||
		errors.Is(err, ErrStudentNotFound)
}

// IsConflict reports whether err is a uniqueness or already-marked violation.
func IsConflict(err error) bool {
	return errors.Is(err, ErrDuplicateID) ||
		errors.Is(err, ErrAlreadyRegistered) ||
		errors.Is(err, ErrAlreadyAttended) ||
		errors.Is(err, ErrFeedbackExists)
}

// IsStateRejection reports whether err is a forbidden-by-state rejection:
// the request was well-formed but the current data forbids it.
func IsStateRejection(err error) bool {
	return errors.Is(err, ErrEventCancelled) ||
		errors.Is(err, ErrCapacityReached) ||
		errors.Is(err, ErrNotRegistered)
}

// isUniqueViolation matches the unique-constraint errors of both supported
// engines. SQLite reports "UNIQUE constraint failed", Postgres SQLSTATE 23505.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "SQLSTATE 23505") ||
		strings.Contains(msg, "duplicate key value")
}

// isForeignKeyViolation matches referential-integrity errors of both engines.
func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "FOREIGN KEY constraint failed") ||
		strings.Contains(msg, "SQLSTATE 23503")
}
