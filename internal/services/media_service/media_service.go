package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/oklog/ulid/v2"

	"art_academy/internal/domain/models"
	"art_academy/internal/lib/logger/sl"
	"art_academy/internal/metrics"
	"art_academy/internal/storage"
)

const DefaultMaxSize int64 = 10 << 20

// ObjectStorage is a flat key/object store with publicly resolvable URLs.
type ObjectStorage interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}

type MediaService struct {
	log     *slog.Logger
	storage ObjectStorage
	maxSize int64
	now     func() time.Time
}

func NewMediaService(log *slog.Logger, storage ObjectStorage, maxSize int64) *MediaService {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}

	return &MediaService{
		log:     log,
		storage: storage,
		maxSize: maxSize,
		now:     time.Now,
	}
}

// UploadImage validates the image and stores it under a collision-resistant
// key. It returns the public URL, or "" and the reason on failure. Invalid
// input never reaches the storage.
func (s *MediaService) UploadImage(ctx context.Context, in models.UploadInput) (string, error) {
	const op = "media_service.UploadImage"

	log := s.log.With(
		slog.String("op", op),
		slog.String("kind", string(in.Kind)),
		slog.String("filename", in.Filename),
	)

	fail := func(err error) (string, error) {
		metrics.UploadsTotal.WithLabelValues(string(in.Kind), "rejected").Inc()
		log.Warn("upload rejected", sl.Err(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if !in.Kind.Valid() {
		return fail(fmt.Errorf("%w: unknown kind %q", storage.ErrBadPayload, in.Kind))
	}

	if !isImage(in.ContentType) {
		return fail(fmt.Errorf("%w: %s", storage.ErrInvalidFileType, in.ContentType))
	}

	if in.Size > s.maxSize {
		return fail(storage.ErrFileTooLarge)
	}

	// the declared size may lie; read at most one byte past the limit
	data, err := io.ReadAll(io.LimitReader(in.File, s.maxSize+1))
	if err != nil {
		return fail(err)
	}
	if int64(len(data)) > s.maxSize {
		return fail(storage.ErrFileTooLarge)
	}

	detected := mimetype.Detect(data)
	if !isImage(detected.String()) {
		return fail(fmt.Errorf("%w: content is %s", storage.ErrInvalidFileType, detected.String()))
	}

	key := s.objectKey(in, detected)

	if err := s.storage.Put(ctx, key, bytes.NewReader(data), int64(len(data)), detected.String()); err != nil {
		metrics.UploadsTotal.WithLabelValues(string(in.Kind), "failed").Inc()
		log.Error("failed to store image", sl.Err(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	metrics.UploadsTotal.WithLabelValues(string(in.Kind), "stored").Inc()
	log.Info("image stored", slog.String("key", key))

	return s.storage.PublicURL(key), nil
}

// DeleteByURL removes the object addressed by the last path segment of rawURL.
func (s *MediaService) DeleteByURL(ctx context.Context, rawURL string) bool {
	const op = "media_service.DeleteByURL"

	log := s.log.With(
		slog.String("op", op),
		slog.String("url", rawURL),
	)

	key, err := KeyFromURL(rawURL)
	if err != nil {
		log.Warn("cannot extract storage key", sl.Err(err))
		return false
	}

	if err := s.storage.Delete(ctx, key); err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			log.Warn("image already gone", slog.String("key", key))
		} else {
			log.Error("failed to delete image", sl.Err(err))
		}
		return false
	}

	log.Info("image deleted", slog.String("key", key))

	return true
}

// KeyFromURL returns the final path segment of a public object URL.
func KeyFromURL(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", err
	}

	key := path.Base(u.Path)
	if key == "" || key == "." || key == "/" {
		return "", fmt.Errorf("%w: no key in %q", storage.ErrBadPayload, rawURL)
	}

	return key, nil
}

// objectKey builds <kind>-<itemID|unix millis>-<ulid>.<ext>.
func (s *MediaService) objectKey(in models.UploadInput, detected *mimetype.MIME) string {
	ref := strconv.FormatInt(s.now().UnixMilli(), 10)
	if in.ItemID != nil {
		ref = strconv.FormatInt(*in.ItemID, 10)
	}

	ext := detected.Extension()
	if ext == "" {
		ext = strings.ToLower(filepath.Ext(in.Filename))
	}

	return fmt.Sprintf("%s-%s-%s%s", in.Kind, ref, strings.ToLower(ulid.Make().String()), ext)
}

func isImage(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "image/")
}
