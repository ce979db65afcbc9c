package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCustomTag(t *testing.T) {
	env := newTestEnv(t)
	u := env.registerUser(t, "alice")
	ctx := context.Background()

	tag, err := env.tags.CreateCustom(ctx, u.ID, "gardening")
	require.NoError(t, err)
	assert.True(t, tag.IsCustom)
	require.NotNil(t, tag.OwnerID)
	assert.Equal(t, u.ID, *tag.OwnerID)
}

func TestCreateCustomTagNameUniqueCaseInsensitive(t *testing.T) {
	env := newTestEnv(t)
	u := env.registerUser(t, "alice")
	ctx := context.Background()

	// clashes with the pre-built "work" tag
	_, err := env.tags.CreateCustom(ctx, u.ID, "WORK")
	assert.ErrorIs(t, err, ErrConflict)

	_, err = env.tags.CreateCustom(ctx, u.ID, "gardening")
	require.NoError(t, err)
	_, err = env.tags.CreateCustom(ctx, u.ID, "Gardening")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCustomTagScopePerUser(t *testing.T) {
	env := newTestEnv(t)
	alice := env.registerUser(t, "alice")
	bob := env.registerUser(t, "bob")
	ctx := context.Background()

	_, err := env.tags.CreateCustom(ctx, alice.ID, "gardening")
	require.NoError(t, err)

	// bob can reuse the name; alice's custom tags are invisible to him
	_, err = env.tags.CreateCustom(ctx, bob.ID, "gardening")
	require.NoError(t, err)

	visible, err := env.tags.ListVisible(ctx, bob.ID)
	require.NoError(t, err)
	names := 0
	for _, tag := range visible {
		if tag.Name == "gardening" {
			names++
		}
	}
	assert.Equal(t, 1, names)
}

func TestDeleteCustomTagOwnership(t *testing.T) {
	env := newTestEnv(t)
	alice := env.registerUser(t, "alice")
	bob := env.registerUser(t, "bob")
	ctx := context.Background()

	tag, err := env.tags.CreateCustom(ctx, alice.ID, "gardening")
	require.NoError(t, err)

	assert.ErrorIs(t, env.tags.DeleteCustom(ctx, bob.ID, tag.ID), ErrAuthorization)
	assert.ErrorIs(t, env.tags.DeleteCustom(ctx, alice.ID, env.tagWork.ID), ErrAuthorization, "pre-built tags cannot be deleted")
	assert.ErrorIs(t, env.tags.DeleteCustom(ctx, alice.ID, 9999), ErrNotFound)

	require.NoError(t, env.tags.DeleteCustom(ctx, alice.ID, tag.ID))
}

func TestCreateCustomTagValidation(t *testing.T) {
	env := newTestEnv(t)
	u := env.registerUser(t, "alice")
	ctx := context.Background()

	_, err := env.tags.CreateCustom(ctx, u.ID, "   ")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = env.tags.CreateCustom(ctx, 0, "gardening")
	assert.ErrorIs(t, err, ErrAuthentication)
}
