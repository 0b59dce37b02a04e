package redisstore

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"art_academy/internal/storage"
)

func TestClient_Get(t *testing.T) {
	ctx := context.Background()
	db, mock := redismock.NewClientMock()
	c := Wrap(db)

	mock.ExpectGet("art_academy:siteData").SetVal(`{"general":{}}`)
	mock.ExpectGet("art_academy:missing").RedisNil()
	mock.ExpectGet("art_academy:broken").SetErr(errors.New("connection reset"))

	got, err := c.Get(ctx, "siteData")
	require.NoError(t, err)
	assert.JSONEq(t, `{"general":{}}`, string(got))

	_, err = c.Get(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrNoSuchKey)

	_, err = c.Get(ctx, "broken")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, storage.ErrNoSuchKey)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_SetRemove(t *testing.T) {
	ctx := context.Background()
	db, mock := redismock.NewClientMock()
	c := Wrap(db)

	mock.ExpectSet("art_academy:siteData", []byte(`{}`), 0).SetVal("OK")
	mock.ExpectDel("art_academy:siteData").SetVal(1)
	mock.ExpectPing().SetVal("PONG")

	require.NoError(t, c.Set(ctx, "siteData", []byte(`{}`)))
	require.NoError(t, c.Remove(ctx, "siteData"))
	require.NoError(t, c.HealthCheck(ctx))

	assert.NoError(t, mock.ExpectationsWereMet())
}
