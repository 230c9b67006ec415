// Package notice turns failures into the one-line notification the browser
// shows to the user.
package notice

import (
	"net/http"
	"slices"

	"hotel-portal/internal/infra/backend"
	"hotel-portal/internal/pkg/errs"
)

const UnknownError = "An unknown error occurred."

// Policy selects how backend answers are worded for one operation.
type Policy struct {
	// Flatten lists the statuses whose field errors are shown joined.
	Flatten []int
	// RawNotFound shows a 404 body as is.
	RawNotFound bool
	// Fallback replaces the backend message for every other APIError.
	Fallback string
}

var Default = Policy{Flatten: []int{http.StatusUnprocessableEntity, http.StatusConflict}}

// Describe resolves the notification text for err.
func Describe(err error, p Policy) string {
	if err == nil {
		return ""
	}
	if msg, ok := errs.UserMessage(err); ok {
		return msg
	}
	var n *Error
	if errs.As(err, &n) {
		return n.Message
	}
	if apiErr, ok := backend.AsAPIError(err); ok {
		if slices.Contains(p.Flatten, apiErr.Status) && len(apiErr.FieldErrors) > 0 {
			return apiErr.Flatten()
		}
		if p.RawNotFound && apiErr.Status == http.StatusNotFound && apiErr.Body != "" {
			return apiErr.Body
		}
		if p.Fallback != "" {
			return p.Fallback
		}
		if apiErr.Message != "" {
			return apiErr.Message
		}
	}
	if p.Fallback != "" {
		return p.Fallback
	}
	return UnknownError
}

// Error is a failure whose notification text is already resolved.
type Error struct {
	Status  int
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

// New builds a notification error that did not come from the backend.
func New(status int, message string) error {
	return &Error{Status: status, Message: message}
}

// Wrap resolves err under p. Validation errors and nil pass through.
func Wrap(err error, p Policy) error {
	if err == nil {
		return nil
	}
	if _, ok := errs.UserMessage(err); ok {
		return err
	}
	var n *Error
	if errs.As(err, &n) {
		return err
	}
	return &Error{Status: StatusOf(err), Message: Describe(err, p), cause: err}
}

// Override replaces the message while keeping status and cause.
func Override(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Status: StatusOf(err), Message: message, cause: err}
}

// StatusOf maps err to the HTTP status the gateway answers with.
func StatusOf(err error) int {
	var n *Error
	switch {
	case errs.As(err, &n):
		return n.Status
	case errs.Is(err, errs.ErrValidation):
		return http.StatusUnprocessableEntity
	case errs.Is(err, backend.ErrUnavailable):
		return http.StatusBadGateway
	}
	if apiErr, ok := backend.AsAPIError(err); ok {
		return apiErr.Status
	}
	return http.StatusInternalServerError
}
