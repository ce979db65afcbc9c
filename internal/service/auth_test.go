package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCreatesUserAndStreak(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	u, err := env.auth.Register(ctx, "Alice", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username, "usernames are stored lower-cased")
	assert.NotEmpty(t, u.PasswordHash)
	assert.NotEmpty(t, u.PasswordSalt)

	st, err := env.streaks.Get(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, st, "registration creates the 1:1 streak record")
	assert.Zero(t, st.CurrentStreak)
	assert.Zero(t, st.LongestStreak)
	assert.Nil(t, st.LastEntryDate)
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.auth.Register(ctx, "ab", "longenough")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = env.auth.Register(ctx, "alice", "short")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRegisterDuplicateUsernameIsCaseInsensitive(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.auth.Register(ctx, "alice", "hunter22")
	require.NoError(t, err)

	_, err = env.auth.Register(ctx, "ALICE", "hunter22")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.registerUser(t, "alice")

	u, err := env.auth.Login(ctx, "Alice", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)

	_, badPass := env.auth.Login(ctx, "alice", "wrong-password")
	_, badUser := env.auth.Login(ctx, "nosuchuser", "hunter22")
	assert.ErrorIs(t, badPass, ErrAuthentication)
	assert.ErrorIs(t, badUser, ErrAuthentication)
	assert.Equal(t, badPass.Error(), badUser.Error(), "failures must not reveal whether the username exists")
}

func TestPinFlow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	u := env.registerUser(t, "alice")

	// no pin configured yet
	_, err := env.auth.VerifyPin(ctx, u.ID, "1234")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, env.auth.SetPin(ctx, u.ID, "12a4"), ErrValidation)
	assert.ErrorIs(t, env.auth.SetPin(ctx, u.ID, "12345"), ErrValidation)
	assert.ErrorIs(t, env.auth.SetPin(ctx, 0, "1234"), ErrAuthentication)

	require.NoError(t, env.auth.SetPin(ctx, u.ID, "1234"))

	ok, err := env.auth.VerifyPin(ctx, u.ID, "1234")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = env.auth.VerifyPin(ctx, u.ID, "4321")
	require.NoError(t, err)
	assert.False(t, ok)
}
