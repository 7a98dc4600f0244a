package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := NewAuthService(newTestDB(t))

	user, err := svc.Register("a@example.com", "hunter22", "Ada", "L")
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.NotEqual(t, "hunter22", user.Password)

	token, got, err := svc.Authenticate("a@example.com", "hunter22")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, user.ID, got.ID)

	_, _, err = svc.Authenticate("a@example.com", "wrong")
	require.Error(t, err)

	_, _, err = svc.Authenticate("nobody@example.com", "hunter22")
	require.Error(t, err)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewAuthService(newTestDB(t))

	_, err := svc.Register("a@example.com", "hunter22", "Ada", "L")
	require.NoError(t, err)

	_, err = svc.Register("a@example.com", "other-pass", "Al", "T")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "email", verr.Field)
}
