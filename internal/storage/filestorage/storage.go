package filestorage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"art_academy/internal/storage"
)

// LocalFileStorage хранит загруженные изображения на локальном диске
type LocalFileStorage struct {
	baseDir string // например: "./uploads"
	baseURL string // например: "http://localhost:8080/uploads"
}

func NewLocalFileStorage(baseDir, baseURL string) (*LocalFileStorage, error) {
	// Создаем директорию, если она не существует
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}

	return &LocalFileStorage{
		baseDir: baseDir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// Put writes r under key. A cancelled context removes the partial file.
func (s *LocalFileStorage) Put(ctx context.Context, key string, r io.Reader, _ int64, _ string) error {
	const op = "storage.filestorage.Put"

	if err := ctx.Err(); err != nil {
		return err
	}

	filePath, err := s.pathFor(key)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	dst, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("%s: failed to create destination file: %w", op, err)
	}
	defer dst.Close()

	done := make(chan struct{})
	var copyErr error

	go func() {
		_, copyErr = io.Copy(dst, r)
		close(done)
	}()

	select {
	case <-done:
		if copyErr != nil {
			_ = os.Remove(filePath)
			return fmt.Errorf("%s: failed to copy file: %w", op, copyErr)
		}
	case <-ctx.Done():
		_ = os.Remove(filePath)
		return ctx.Err()
	}

	return nil
}

// Delete удаляет файл из хранилища
func (s *LocalFileStorage) Delete(ctx context.Context, key string) error {
	const op = "storage.filestorage.Delete"

	filePath, err := s.pathFor(key)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := os.Remove(filePath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", op, storage.ErrFileNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *LocalFileStorage) PublicURL(key string) string {
	return s.baseURL + "/" + key
}

// GetFullPath возвращает полный путь к файлу на диске
func (s *LocalFileStorage) GetFullPath(key string) string {
	return filepath.Join(s.baseDir, key)
}

func (s *LocalFileStorage) BaseDir() string {
	return s.baseDir
}

// keys are flat file names; anything that could escape baseDir is rejected
func (s *LocalFileStorage) pathFor(key string) (string, error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("invalid key %q", key)
	}

	return filepath.Join(s.baseDir, key), nil
}
