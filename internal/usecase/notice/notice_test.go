//go:build unit

package notice_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"hotel-portal/internal/infra/backend"
	"hotel-portal/internal/pkg/errs"
	"hotel-portal/internal/usecase/notice"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	fieldErrs := &backend.APIError{
		Status:  http.StatusUnprocessableEntity,
		Message: "Validation failed",
		FieldErrors: []backend.FieldError{
			{Field: "email", Messages: []string{"must not be blank"}},
			{Field: "password", Messages: []string{"too short", "needs a digit"}},
		},
	}
	notFound := &backend.APIError{Status: http.StatusNotFound, Message: "Not Found", Body: "Room 9 does not exist"}
	serverErr := &backend.APIError{Status: http.StatusInternalServerError, Message: "Internal Server Error"}

	tests := []struct {
		name   string
		err    error
		policy notice.Policy
		want   string
	}{
		{name: "flattened field errors", err: fieldErrs, policy: notice.Default, want: "must not be blank too short, needs a digit"},
		{name: "wrapped api error", err: fmt.Errorf("create guest: %w", fieldErrs), policy: notice.Default, want: "must not be blank too short, needs a digit"},
		{name: "status not flattened", err: fieldErrs, policy: notice.Policy{}, want: "Validation failed"},
		{name: "raw not found body", err: notFound, policy: notice.Policy{RawNotFound: true}, want: "Room 9 does not exist"},
		{name: "fallback", err: serverErr, policy: notice.Policy{Fallback: "Error loading rooms"}, want: "Error loading rooms"},
		{name: "backend message", err: serverErr, policy: notice.Policy{}, want: "Internal Server Error"},
		{name: "validation passes through", err: errs.Validation("Please choose a later time."), policy: notice.Default, want: "Please choose a later time."},
		{name: "plain error", err: errors.New("dial tcp: refused"), policy: notice.Policy{}, want: notice.UnknownError},
		{name: "nil", err: nil, policy: notice.Default, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, notice.Describe(tt.err, tt.policy))
		})
	}
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusUnprocessableEntity, notice.StatusOf(errs.Validation("x")))
	assert.Equal(t, http.StatusBadGateway, notice.StatusOf(errs.Wrap(backend.ErrUnavailable, "get rooms")))
	assert.Equal(t, http.StatusConflict, notice.StatusOf(&backend.APIError{Status: http.StatusConflict}))
	assert.Equal(t, http.StatusForbidden, notice.StatusOf(notice.New(http.StatusForbidden, "no")))
	assert.Equal(t, http.StatusInternalServerError, notice.StatusOf(errors.New("boom")))
}

func TestWrapAndOverride(t *testing.T) {
	cause := &backend.APIError{Status: http.StatusConflict, Message: "Booking overlaps. Pick other dates."}

	wrapped := notice.Wrap(cause, notice.Policy{Fallback: "Error"})
	assert.Equal(t, "Error", wrapped.Error())
	assert.Equal(t, http.StatusConflict, notice.StatusOf(wrapped))
	assert.ErrorIs(t, wrapped, cause)

	overridden := notice.Override(cause, "Booking overlaps")
	assert.Equal(t, "Booking overlaps", overridden.Error())
	assert.Equal(t, http.StatusConflict, notice.StatusOf(overridden))

	v := errs.Validation("Invalid email address.")
	assert.Same(t, v, notice.Wrap(v, notice.Default))
	assert.NoError(t, notice.Wrap(nil, notice.Default))
}
