package external

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rainydays.app/internal/ports"
	"rainydays.app/pkg/errors"
)

func TestCacheSessionStore_Memory(t *testing.T) {
	store := NewCacheSessionStore(NewMemoryCacheProvider())
	ctx := context.Background()
	session := &ports.SessionData{
		Token:          "tok",
		Username:       "ana",
		LoginTimestamp: time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC),
	}

	_, err := store.Get(ctx, "tok")
	require.True(t, errors.IsNotFoundError(err))

	require.NoError(t, store.Save(ctx, session, time.Hour))

	loaded, err := store.Get(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, session, loaded)

	require.NoError(t, store.Delete(ctx, "tok"))
	_, err = store.Get(ctx, "tok")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCacheSessionStore_Redis(t *testing.T) {
	mockRedis, adapter := newTestRedisAdapter(t)
	store := NewCacheSessionStore(adapter)
	ctx := context.Background()

	session := &ports.SessionData{Token: "abc", Username: "ana", LoginTimestamp: time.Now().UTC()}
	require.NoError(t, store.Save(ctx, session, time.Hour))

	raw, err := mockRedis.Get("session:abc")
	require.NoError(t, err)

	var stored ports.SessionData
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, "ana", stored.Username)
	assert.Equal(t, time.Hour, mockRedis.TTL("session:abc"))

	mockRedis.FastForward(time.Hour + time.Second)
	_, err = store.Get(ctx, "abc")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCacheSessionStore_Validation(t *testing.T) {
	store := NewCacheSessionStore(NewMemoryCacheProvider())
	ctx := context.Background()

	_, err := store.Get(ctx, "")
	assert.True(t, errors.IsValidationError(err))

	assert.True(t, errors.IsValidationError(store.Save(ctx, nil, time.Hour)))
	assert.True(t, errors.IsValidationError(store.Save(ctx, &ports.SessionData{}, time.Hour)))
	assert.True(t, errors.IsValidationError(store.Delete(ctx, "")))
}
