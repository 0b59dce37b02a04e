package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"art_academy/internal/lib/logger/handlers/slogdiscard"
	services "art_academy/internal/services/settings_service"
	"art_academy/internal/storage"
)

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Get(ctx context.Context, key string) (json.RawMessage, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockSettingsRepository) Upsert(ctx context.Context, key string, value json.RawMessage) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func TestSettingsService_GetIsCached(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSettingsRepository)
	svc := services.NewSettingsService(slogdiscard.NewDiscardLogger(), repo, time.Minute)

	repo.On("Get", ctx, "hero").Return(json.RawMessage(`{"title":"hi"}`), nil).Once()

	assert.JSONEq(t, `{"title":"hi"}`, string(svc.Get(ctx, "hero")))
	assert.JSONEq(t, `{"title":"hi"}`, string(svc.Get(ctx, "hero")))
	repo.AssertNumberOfCalls(t, "Get", 1)
}

func TestSettingsService_GetMissingAndFailing(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSettingsRepository)
	svc := services.NewSettingsService(slogdiscard.NewDiscardLogger(), repo, time.Minute)

	repo.On("Get", ctx, "absent").Return(nil, storage.ErrNoSuchKey)
	repo.On("Get", ctx, "broken").Return(nil, errors.New("connection refused"))

	assert.Nil(t, svc.Get(ctx, "absent"))
	assert.Nil(t, svc.Get(ctx, "broken"))
	// failures are not cached
	assert.Nil(t, svc.Get(ctx, "broken"))
	repo.AssertNumberOfCalls(t, "Get", 3)
}

func TestSettingsService_SetInvalidatesCache(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSettingsRepository)
	svc := services.NewSettingsService(slogdiscard.NewDiscardLogger(), repo, time.Minute)

	repo.On("Get", ctx, "hero").Return(json.RawMessage(`1`), nil).Once()
	repo.On("Upsert", ctx, "hero", json.RawMessage(`2`)).Return(nil).Once()
	repo.On("Get", ctx, "hero").Return(json.RawMessage(`2`), nil).Once()

	assert.Equal(t, "1", string(svc.Get(ctx, "hero")))
	assert.True(t, svc.Set(ctx, "hero", json.RawMessage(`2`)))
	assert.Equal(t, "2", string(svc.Get(ctx, "hero")))
	repo.AssertExpectations(t)
}

func TestSettingsService_SetFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSettingsRepository)
	svc := services.NewSettingsService(slogdiscard.NewDiscardLogger(), repo, time.Minute)

	repo.On("Upsert", ctx, "hero", mock.Anything).Return(storage.ErrBadPayload)

	assert.False(t, svc.Set(ctx, "hero", json.RawMessage(`{`)))
}

// blockingRepo parks Upsert until release is closed, so reads can run mid-write.
type blockingRepo struct {
	mu      sync.Mutex
	value   json.RawMessage
	entered chan struct{}
	release chan struct{}
}

func (r *blockingRepo) Get(_ context.Context, _ string) (json.RawMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.value, nil
}

func (r *blockingRepo) Upsert(_ context.Context, _ string, value json.RawMessage) error {
	close(r.entered)
	<-r.release

	r.mu.Lock()
	defer r.mu.Unlock()
	r.value = value
	return nil
}

func TestSettingsService_GetDuringSetDoesNotPinOldValue(t *testing.T) {
	ctx := context.Background()
	repo := &blockingRepo{
		value:   json.RawMessage(`"old"`),
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	svc := services.NewSettingsService(slogdiscard.NewDiscardLogger(), repo, time.Minute)

	done := make(chan bool)
	go func() {
		done <- svc.Set(ctx, "hero", json.RawMessage(`"new"`))
	}()

	<-repo.entered
	// reads the row the write has not replaced yet
	assert.Equal(t, `"old"`, string(svc.Get(ctx, "hero")))

	close(repo.release)
	require.True(t, <-done)

	assert.Equal(t, `"new"`, string(svc.Get(ctx, "hero")))
}
