package redisprovider

import (
	"assetconsole/models"
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	store := NewRedisCredentialStore("127.0.0.1:6379", "assetctl:session")
	defer store.Close()

	assert.Equal(t, "assetctl:session:token", store.TokenKey())
	assert.Equal(t, "assetctl:session:user", store.UserKey())
}

func TestUnreachableRedisSurfacesErrors(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	store := NewRedisCredentialStoreWithClient(client, "test")
	defer store.Close()
	ctx := context.Background()

	_, ok, err := store.CurrentToken(ctx)
	assert.Error(t, err)
	assert.False(t, ok)

	_, err = store.CurrentUser(ctx)
	assert.Error(t, err)

	assert.Error(t, store.Save(ctx, models.Session{Token: "t"}))
	assert.Error(t, store.Clear(ctx))
	assert.Error(t, store.Ping(ctx))
}
