package sessionprovider

import (
	"assetconsole/models"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	store := NewFileStore(path)

	t.Run("no file means no session", func(t *testing.T) {
		token, ok, err := store.CurrentToken(ctx)
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, token)

		user, err := store.CurrentUser(ctx)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("save then read", func(t *testing.T) {
		user := &models.User{ID: "u1", Email: "jane.doe@example.com", Role: models.AdminRole}
		assert.NoError(t, store.Save(ctx, models.Session{Token: "tok-1", User: user}))

		token, ok, err := store.CurrentToken(ctx)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "tok-1", token)

		stored, err := store.CurrentUser(ctx)
		assert.NoError(t, err)
		assert.Equal(t, user, stored)

		info, err := os.Stat(path)
		assert.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("change made by another process is seen", func(t *testing.T) {
		other := NewFileStore(path)
		assert.NoError(t, other.Clear(ctx))

		_, ok, err := store.CurrentToken(ctx)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("clear without file is not an error", func(t *testing.T) {
		assert.NoError(t, store.Clear(ctx))
	})

	t.Run("corrupt file surfaces an error", func(t *testing.T) {
		assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
		_, _, err := store.CurrentToken(ctx)
		assert.Error(t, err)
	})
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	user := &models.User{ID: "u1"}
	assert.NoError(t, store.Save(ctx, models.Session{Token: "abc", User: user}))
	user.ID = "mutated"

	stored, err := store.CurrentUser(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "u1", stored.ID)

	assert.NoError(t, store.Clear(ctx))
	_, ok, err := store.CurrentToken(ctx)
	assert.NoError(t, err)
	assert.False(t, ok)
}
