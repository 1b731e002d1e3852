//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"balancestore/internal/pkg/errs"
	"balancestore/internal/pkg/jwt"
	"balancestore/internal/usecase/commands"
	"balancestore/internal/usecase/readmodel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsersGateway struct {
	loginUser *readmodel.AuthUserRM
	loginErr  error
	regUser   *readmodel.AuthUserRM
	regErr    error
}

func (f *fakeUsersGateway) Login(_ context.Context, _, _ string) (*readmodel.AuthUserRM, error) {
	return f.loginUser, f.loginErr
}

func (f *fakeUsersGateway) Register(_ context.Context, _, _, _, _ string) (*readmodel.AuthUserRM, error) {
	return f.regUser, f.regErr
}

func TestAuthCommands(t *testing.T) {
	ctx := context.Background()
	tokens := jwt.NewService("test-secret", time.Hour)
	ana := readmodel.AuthUserRM{Username: "ana", NombreCompleto: "Ana Rojas", Email: "ana@example.com"}

	t.Run("login persists the account record and issues a token", func(t *testing.T) {
		store := newFakeUserStore()
		cmds := commands.NewAuthCommands(store, &fakeUsersGateway{loginUser: &ana}, tokens, discardLogger())

		result, err := cmds.Login(ctx, "s1", "ana", "secret")
		require.NoError(t, err)
		assert.Equal(t, ana, result.User)
		require.NotEmpty(t, result.Token)

		claims, err := tokens.ValidateToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, "ana", claims.Username)

		stored := store.Load(ctx, "s1")
		require.NotNil(t, stored)
		assert.Equal(t, ana, *stored)
	})

	t.Run("rejected login maps to invalid credentials", func(t *testing.T) {
		store := newFakeUserStore()
		cmds := commands.NewAuthCommands(store, &fakeUsersGateway{loginErr: assert.AnError}, tokens, discardLogger())

		_, err := cmds.Login(ctx, "s1", "ana", "wrong")
		require.ErrorIs(t, err, errs.ErrInvalidCredentials)
		assert.Nil(t, store.Load(ctx, "s1"))
	})

	t.Run("register does not log the visitor in", func(t *testing.T) {
		store := newFakeUserStore()
		cmds := commands.NewAuthCommands(store, &fakeUsersGateway{regUser: &ana}, tokens, discardLogger())

		user, err := cmds.Register(ctx, "ana", "Ana Rojas", "ana@example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, ana, *user)
		assert.Nil(t, store.Load(ctx, "s1"), "no session record on registration")
	})

	t.Run("failed registration maps to the sentinel", func(t *testing.T) {
		cmds := commands.NewAuthCommands(newFakeUserStore(), &fakeUsersGateway{regErr: assert.AnError}, tokens, discardLogger())
		_, err := cmds.Register(ctx, "ana", "Ana Rojas", "ana@example.com", "secret")
		require.ErrorIs(t, err, errs.ErrRegistrationFailed)
	})

	t.Run("remote text survives the sentinel mapping", func(t *testing.T) {
		remoteErr := errs.WithHint(errs.New("conflict"), "El nombre de usuario ya existe")
		cmds := commands.NewAuthCommands(newFakeUserStore(), &fakeUsersGateway{regErr: remoteErr}, tokens, discardLogger())

		_, err := cmds.Register(ctx, "ana", "Ana Rojas", "ana@example.com", "secret")
		require.ErrorIs(t, err, errs.ErrRegistrationFailed)
		assert.Equal(t, "El nombre de usuario ya existe", errs.Hint(err))
	})

	t.Run("logout clears the record, current user reads it", func(t *testing.T) {
		store := newFakeUserStore()
		store.users["s1"] = ana
		cmds := commands.NewAuthCommands(store, &fakeUsersGateway{}, tokens, discardLogger())

		require.NotNil(t, cmds.CurrentUser(ctx, "s1"))
		cmds.Logout(ctx, "s1")
		assert.Nil(t, cmds.CurrentUser(ctx, "s1"))
	})
}
