package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) {
	t.Helper()
	mr := miniredis.RunT(t)
	require.NoError(t, Init(mr.Addr(), ""))
	t.Cleanup(func() {
		if err := Close(); err != nil {
			t.Log("error closing redis: ", err)
		}
	})
}

func TestCacheRoundTrip(t *testing.T) {
	setup(t)
	ctx := context.Background()

	original := map[string]interface{}{"code": "AB12", "name": "Rex"}
	require.NoError(t, SetCache(ctx, "RESCUE:AB12", original))

	fetched := make(map[string]interface{})
	found, err := GetCache(ctx, "RESCUE:AB12", &fetched)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Rex", fetched["name"])
}

func TestCacheMiss(t *testing.T) {
	setup(t)

	dest := make(map[string]interface{})
	found, err := GetCache(context.Background(), "RESCUE:NOPE", &dest)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDeleteCache(t *testing.T) {
	setup(t)
	ctx := context.Background()

	require.NoError(t, SetCache(ctx, "PET:D-001", map[string]interface{}{"petId": "D-001"}))
	require.NoError(t, DeleteCache(ctx, "PET:D-001"))

	dest := make(map[string]interface{})
	found, err := GetCache(ctx, "PET:D-001", &dest)
	require.NoError(t, err)
	assert.False(t, found)
}

// With no client configured the cache degrades to a no-op instead of failing
// requests.
func TestCacheDisabled(t *testing.T) {
	require.Nil(t, Rdb)

	assert.NoError(t, SetCache(context.Background(), "k", "v"))
	found, err := GetCache(context.Background(), "k", new(string))
	assert.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, DeleteCache(context.Background(), "k"))
}
