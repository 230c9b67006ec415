//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"hotel-portal/internal/domain/session"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// signingKey is arbitrary; the gateway never verifies signatures.
var signingKey = []byte("test-signing-key")

// GenerateToken issues a token shaped like the backend's.
func GenerateToken(t *testing.T, email string, exp time.Time, authorities ...string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": email,
		"rol": authorities,
		"exp": exp.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
	require.NoError(t, err)
	return token
}

// Session builds a logged-in session valid for an hour after now.
func Session(t *testing.T, email string, role session.Role, now time.Time) session.Session {
	t.Helper()
	exp := now.Add(time.Hour)
	return session.New(GenerateToken(t, email, exp, authorityOf(role)), email, role, exp)
}

func authorityOf(r session.Role) string {
	switch r {
	case session.RoleAdmin:
		return session.AuthorityAdmin
	case session.RoleReceptionist:
		return session.AuthorityReceptionist
	case session.RoleCleaningStaff:
		return session.AuthorityCleaningStaff
	default:
		return session.AuthorityGuest
	}
}
