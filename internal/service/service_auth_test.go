package service

import (
	"context"
	"strings"
	"testing"

	"github.com/routeops/route-tracker/internal/logger"
	"github.com/routeops/route-tracker/internal/store"
	"github.com/routeops/route-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(t *testing.T) AuthService {
	t.Helper()
	storages := store.NewStorages(logger.Nop())
	return NewAuthService(storages.UserRepository, logger.Nop())
}

var registerFixture = models.RegisterRequest{
	Email:    "a@x.com",
	Password: "p",
	Name:     "Alice",
	Company:  "Acme Logistics",
}

func TestAuthService_Register(t *testing.T) {
	auth := newTestAuthService(t)

	registered, err := auth.Register(context.Background(), registerFixture)

	require.NoError(t, err)
	assert.NotEmpty(t, registered.ID)
	assert.Equal(t, "a@x.com", registered.Email)
	assert.Equal(t, models.DefaultRole, registered.Role)
	assert.False(t, registered.CreatedAt.IsZero())
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, registerFixture)
	require.NoError(t, err)

	_, err = auth.Register(ctx, registerFixture)
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	registered, err := auth.Register(ctx, registerFixture)
	require.NoError(t, err)

	found, err := auth.Login(ctx, models.LoginRequest{Email: "a@x.com", Password: "p"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, found.ID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, registerFixture)
	require.NoError(t, err)

	_, err = auth.Login(ctx, models.LoginRequest{Email: "a@x.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	auth := newTestAuthService(t)

	_, err := auth.Login(context.Background(), models.LoginRequest{Email: "nobody@x.com", Password: "p"})

	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	registered, err := auth.Register(ctx, registerFixture)
	require.NoError(t, err)

	token, err := auth.CreateToken(ctx, registered)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(token.Value, registered.ID))

	parsed, err := auth.ParseToken(ctx, token.Value)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, parsed.UserID)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	auth := newTestAuthService(t)

	_, err := auth.ParseToken(context.Background(), "not-a-token")

	assert.ErrorIs(t, err, ErrTokenIsInvalid)
}

func TestAuthService_GetUser(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	registered, err := auth.Register(ctx, registerFixture)
	require.NoError(t, err)

	found, err := auth.GetUser(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, registered.Email, found.Email)

	_, err = auth.GetUser(ctx, "1")
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}
