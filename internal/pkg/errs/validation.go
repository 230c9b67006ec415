package errs

import (
	"fmt"

	cr "github.com/cockroachdb/errors"
)

// ErrValidation marks every error whose text is safe to show to the user as is.
var ErrValidation = cr.New("validation failed")

// ValidationError carries a user-facing message. Is matches both its kind
// sentinel and ErrValidation.
type ValidationError struct {
	kind error
	msg  string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func (e *ValidationError) Is(target error) bool {
	if target == ErrValidation {
		return true
	}
	return e.kind != nil && target == e.kind
}

// Validation declares a sentinel whose message is shown verbatim.
func Validation(msg string) error {
	return &ValidationError{msg: msg}
}

// Invalidf builds a formatted message that still matches kind via errors.Is.
func Invalidf(kind error, format string, args ...any) error {
	return &ValidationError{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// UserMessage returns the message of the first ValidationError in the chain.
func UserMessage(err error) (string, bool) {
	var ve *ValidationError
	if cr.As(err, &ve) {
		return ve.msg, true
	}
	return "", false
}
