package notes

import (
	"errors"
	"fmt"
)

// ErrPersistenceRead marks a failure to read or decode the persisted
// collection. Load recovers from it by starting with no notes.
var ErrPersistenceRead = errors.New("reading persisted notes")

// ValidationError reports a note field that failed validation.
// No mutation happens when it is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// RequiredFieldsMessage is the user-facing text for a missing title or
// description.
const RequiredFieldsMessage = "Title and Description are required."

// IsValidation reports whether err is or wraps a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
