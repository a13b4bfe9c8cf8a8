package infra

import (
	"context"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderdesk/orderdesk/internal/logging"
)

func TestSchemaStatements(t *testing.T) {
	stmts := schemaStatements()
	require.NotEmpty(t, stmts)

	joined := strings.Join(stmts, "\n")
	assert.Contains(t, joined, "UNIQUE (phone)")
	assert.Contains(t, joined, "UNIQUE (transport_name)")
	for _, s := range stmts {
		assert.NotContains(t, s, ";", "statement should not contain a separator")
		assert.True(t, strings.HasPrefix(s, "CREATE"), s)
	}
}

func TestNewClientsRequireURL(t *testing.T) {
	_, err := NewPostgresPool(context.Background(), "")
	assert.Error(t, err)
	_, err = NewRedisClient(context.Background(), "")
	assert.Error(t, err)
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := NewRedisClient(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	assert.NoError(t, client.Close())
}

func TestCheck(t *testing.T) {
	logger := logging.Discard()
	ctx := context.Background()

	h := Check(ctx, nil, nil, logger)
	assert.Equal(t, Health{Postgres: StatusDisabled, Redis: StatusDisabled}, h)
	assert.True(t, h.Healthy())

	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()

	h = Check(ctx, nil, client, logger)
	assert.Equal(t, StatusOK, h.Redis)
	assert.True(t, h.Healthy())

	mr.Close()
	h = Check(ctx, nil, client, logger)
	assert.Equal(t, StatusUnavailable, h.Redis)
	assert.False(t, h.Healthy())
}
