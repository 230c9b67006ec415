package backend

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	"hotel-portal/internal/pkg/errs"
)

// ErrUnavailable marks transport failures: the backend could not be reached
// or did not answer in time.
var ErrUnavailable = errs.New("backend unavailable")

// ErrBodyTooLarge is returned when a response exceeds the configured limit.
var ErrBodyTooLarge = errs.New("backend response too large")

// FieldError holds the messages the backend reported for one field.
type FieldError struct {
	Field    string
	Messages []string
}

// APIError is a non-2xx answer from the backend. FieldErrors keep the order
// in which the body listed them.
type APIError struct {
	Status      int
	Message     string
	FieldErrors []FieldError
	Body        string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend responded %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend responded %d", e.Status)
}

// Flatten joins each field's messages with ", " and the fields with " ".
func (e *APIError) Flatten() string {
	parts := make([]string, 0, len(e.FieldErrors))
	for _, f := range e.FieldErrors {
		parts = append(parts, strings.Join(f.Messages, ", "))
	}
	return strings.Join(parts, " ")
}

// IsStatus reports whether err is an APIError with one of the given codes.
func IsStatus(err error, codes ...int) bool {
	var apiErr *APIError
	if !errs.As(err, &apiErr) {
		return false
	}
	for _, c := range codes {
		if apiErr.Status == c {
			return true
		}
	}
	return false
}

// AsAPIError extracts the APIError from err's chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errs.As(err, &apiErr)
	return apiErr, ok
}

// FirstSentence returns the text before the first '.'.
func FirstSentence(s string) string {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[:i]
	}
	return s
}

// parseAPIError reads {"message": ..., "errors": ...}. errors may be an
// object of field -> message(s), an array or a single string. Non-JSON
// bodies are kept as Message.
func parseAPIError(status int, body []byte) *APIError {
	e := &APIError{Status: status, Body: string(body)}
	if !gjson.ValidBytes(body) {
		e.Message = strings.TrimSpace(string(body))
		if e.Message == "" {
			e.Message = http.StatusText(status)
		}
		return e
	}

	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		e.Message = root.String()
		return e
	}
	e.Message = root.Get("message").String()

	errorsField := root.Get("errors")
	switch {
	case errorsField.IsObject():
		errorsField.ForEach(func(key, value gjson.Result) bool {
			e.FieldErrors = append(e.FieldErrors, FieldError{Field: key.String(), Messages: messages(value)})
			return true
		})
	case errorsField.IsArray():
		for i, value := range errorsField.Array() {
			e.FieldErrors = append(e.FieldErrors, FieldError{Field: fmt.Sprint(i), Messages: messages(value)})
		}
	case errorsField.Type == gjson.String && errorsField.String() != "":
		e.FieldErrors = []FieldError{{Field: "errors", Messages: []string{errorsField.String()}}}
	}
	return e
}

func messages(v gjson.Result) []string {
	if !v.IsArray() {
		return []string{v.String()}
	}
	arr := v.Array()
	out := make([]string, 0, len(arr))
	for _, m := range arr {
		out = append(out, m.String())
	}
	return out
}
