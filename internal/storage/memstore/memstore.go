// Package memstore is an in-process key/value store. Contents are lost on restart.
package memstore

import (
	"context"
	"fmt"

	"github.com/patrickmn/go-cache"

	"art_academy/internal/storage"
)

type Store struct {
	c *cache.Cache
}

func New() *Store {
	return &Store{c: cache.New(cache.NoExpiration, 0)}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := s.c.Get(key)
	if !ok {
		return nil, fmt.Errorf("storage.memstore.Get: %w", storage.ErrNoSuchKey)
	}

	return append([]byte(nil), v.([]byte)...), nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.c.Set(key, append([]byte(nil), value...), cache.NoExpiration)
	return nil
}

func (s *Store) Remove(_ context.Context, key string) error {
	s.c.Delete(key)
	return nil
}
