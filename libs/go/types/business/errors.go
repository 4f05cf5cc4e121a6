package business

import (
	"errors"
	"fmt"

	"github.com/mergepost/mergepost-api/libs/go/constants"
)

// ValidationError reports a missing or blank required input (recipient
// email, subject, template, empty recipient list). It is raised before any
// side effect occurs.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IndexError reports an edit or remove that targets a recipient position
// outside the current list bounds. The store is left unchanged.
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d, list size %d", constants.RecipientIndexOutOfRange, e.Index, e.Size)
}

// ErrBatchInFlight is returned when a submission arrives while the session
// already has an outstanding batch. No recipients from the new request are
// processed.
var ErrBatchInFlight = errors.New(constants.BatchInFlight)
