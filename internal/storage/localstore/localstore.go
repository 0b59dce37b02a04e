// Package localstore keeps small documents as one JSON file per key in a
// directory on the local disk.
package localstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"art_academy/internal/storage"
)

const ext = ".json"

type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	const op = "storage.localstore.New"

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Store{dir: dir}, nil
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	const op = "storage.localstore.Get"

	path, err := s.pathFor(key)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNoSuchKey)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return data, nil
}

// Set replaces the value. The write goes through a temp file so readers never
// observe a half-written document.
func (s *Store) Set(_ context.Context, key string, value []byte) error {
	const op = "storage.localstore.Set"

	path, err := s.pathFor(key)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+key+"-*")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Remove deletes the key. Removing an absent key is not an error.
func (s *Store) Remove(_ context.Context, key string) error {
	const op = "storage.localstore.Remove"

	path, err := s.pathFor(key)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Store) pathFor(key string) (string, error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("%w: invalid key %q", storage.ErrBadPayload, key)
	}

	return filepath.Join(s.dir, key+ext), nil
}
