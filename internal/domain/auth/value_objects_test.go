//go:build unit

package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-portal/internal/domain/auth"
	"hotel-portal/internal/domain/user"
)

func TestNewCredentials(t *testing.T) {
	c, err := auth.NewCredentials(" guest@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "guest@example.com", c.Email().Value())
	assert.Equal(t, "pw", c.Password())

	_, err = auth.NewCredentials("", "pw")
	assert.ErrorIs(t, err, auth.ErrMissingCredentials)

	_, err = auth.NewCredentials("guest@example.com", "")
	assert.ErrorIs(t, err, auth.ErrMissingCredentials)

	_, err = auth.NewCredentials("guest", "pw")
	assert.ErrorIs(t, err, user.ErrInvalidEmail)
}
