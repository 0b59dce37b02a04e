package services

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"

	"art_academy/internal/lib/logger/sl"
	"art_academy/internal/metrics"
	"art_academy/internal/storage"
)

type SettingsRepository interface {
	Get(ctx context.Context, key string) (json.RawMessage, error)
	Upsert(ctx context.Context, key string, value json.RawMessage) error
}

// SettingsService reads free-form JSON settings through a short-lived cache.
type SettingsService struct {
	log   *slog.Logger
	repo  SettingsRepository
	cache *cache.Cache
}

func NewSettingsService(log *slog.Logger, repo SettingsRepository, ttl time.Duration) *SettingsService {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &SettingsService{
		log:   log,
		repo:  repo,
		cache: cache.New(ttl, 2*ttl),
	}
}

// Get returns the stored value, or nil when the key is absent or the store failed.
func (s *SettingsService) Get(ctx context.Context, key string) json.RawMessage {
	const op = "settings_service.Get"

	if v, ok := s.cache.Get(key); ok {
		return clone(v.(json.RawMessage))
	}

	log := s.log.With(
		slog.String("op", op),
		slog.String("key", key),
	)

	value, err := s.repo.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNoSuchKey) {
			log.Debug("setting not found")
			return nil
		}
		metrics.GatewayFailures.WithLabelValues("settings", "get").Inc()
		log.Error("failed to read setting", sl.Err(err))
		return nil
	}

	s.cache.SetDefault(key, clone(value))

	return value
}

// Set upserts the value and drops any cached copy.
func (s *SettingsService) Set(ctx context.Context, key string, value json.RawMessage) bool {
	const op = "settings_service.Set"

	log := s.log.With(
		slog.String("op", op),
		slog.String("key", key),
	)

	if err := s.repo.Upsert(ctx, key, value); err != nil {
		metrics.GatewayFailures.WithLabelValues("settings", "set").Inc()
		log.Error("failed to write setting", sl.Err(err))
		return false
	}

	// must follow the upsert: a concurrent Get may have cached the old row
	s.cache.Delete(key)

	log.Info("setting saved")

	return true
}

func clone(v json.RawMessage) json.RawMessage {
	if v == nil {
		return nil
	}
	out := make(json.RawMessage, len(v))
	copy(out, v)
	return out
}
