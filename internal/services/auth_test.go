package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harentsoaR/carewave-api/internal/models"
	"github.com/harentsoaR/carewave-api/internal/store"
	"github.com/harentsoaR/carewave-api/internal/utils"
)

func newAuth(t *testing.T) *AuthService {
	t.Helper()
	svc := NewAuthService(newStore().Users, utils.NewTokenManager("test-secret"))
	_, err := svc.CreateUser(context.Background(), NewUser{
		Email:    "Admin@CareWave.com ",
		Name:     "Admin User",
		Role:     models.RoleAdministrator,
		Password: "correct-horse",
	})
	require.NoError(t, err)
	return svc
}

func TestLoginAndVerify(t *testing.T) {
	ctx := context.Background()
	svc := newAuth(t)

	res, err := svc.Login(ctx, "admin@carewave.com", "correct-horse")
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	assert.Equal(t, "admin@carewave.com", res.User.Email)
	assert.Equal(t, models.RoleAdministrator, res.User.Role)

	user, err := svc.VerifyToken(ctx, res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, user.ID)

	me, err := svc.Me(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Admin User", me.Name)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	svc := newAuth(t)

	for _, tc := range []struct{ email, password string }{
		{"admin@carewave.com", "wrong-password"},
		{"nobody@carewave.com", "correct-horse"},
		{"", ""},
	} {
		_, err := svc.Login(ctx, tc.email, tc.password)
		var aerr *AuthError
		require.True(t, errors.As(err, &aerr), "email %q", tc.email)
		assert.Equal(t, "Invalid credentials", aerr.Message)
	}
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	svc := newAuth(t)
	_, err := svc.VerifyToken(context.Background(), "not-a-token")
	var aerr *AuthError
	require.True(t, errors.As(err, &aerr))
	assert.Equal(t, "Invalid token", aerr.Message)

	other := utils.NewTokenManager("other-secret")
	token, err := other.GenerateJWT("id", "admin@carewave.com", models.RoleAdministrator)
	require.NoError(t, err)
	_, err = svc.VerifyToken(context.Background(), token)
	assert.True(t, errors.As(err, &aerr))
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	svc := newAuth(t)

	_, err := svc.CreateUser(ctx, NewUser{Email: "admin@carewave.com", Name: "Dup", Role: models.RoleDoctor, Password: "password123"})
	assert.ErrorIs(t, err, store.ErrDuplicate)

	_, err = svc.CreateUser(ctx, NewUser{Email: "x@carewave.com", Name: "X", Role: "Janitor", Password: "password123"})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Message, "role must be one of")

	_, err = svc.CreateUser(ctx, NewUser{Email: "x@carewave.com", Name: "X", Role: models.RoleNurse, Password: "short"})
	assert.True(t, errors.As(err, &verr))

	_, err = svc.CreateUser(ctx, NewUser{Email: "not an email", Name: "X", Role: models.RoleNurse, Password: "password123"})
	assert.True(t, errors.As(err, &verr))

	u, err := svc.CreateUser(ctx, NewUser{Email: "nurse@carewave.com", Name: "Nurse Joy", Role: models.RoleNurse, Password: "password123"})
	require.NoError(t, err)
	assert.NotEqual(t, "password123", u.PasswordHash)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
