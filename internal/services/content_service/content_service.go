package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"art_academy/internal/domain/models"
	"art_academy/internal/lib/logger/sl"
	"art_academy/internal/metrics"
	"art_academy/internal/repository"
	"art_academy/internal/storage"
)

// Entity is a row of a content collection.
type Entity interface {
	models.GalleryItem | models.Course | models.Instructor | models.DrawingTechnique
	IsVisible() bool
}

// Service is the typed CRUD façade over one collection. Reads never fail:
// store errors are logged, counted and turned into empty results.
type Service[T Entity, P any] struct {
	log        *slog.Logger
	repo       repository.Collection[T]
	validate   *validator.Validate
	collection string
}

type (
	GalleryService    = Service[models.GalleryItem, models.GalleryItemPatch]
	CourseService     = Service[models.Course, models.CoursePatch]
	InstructorService = Service[models.Instructor, models.InstructorPatch]
)

func NewGalleryService(log *slog.Logger, repo repository.GalleryRepository, v *validator.Validate) *GalleryService {
	return newService[models.GalleryItem, models.GalleryItemPatch](log, repo, v, "gallery")
}

func NewCourseService(log *slog.Logger, repo repository.CourseRepository, v *validator.Validate) *CourseService {
	return newService[models.Course, models.CoursePatch](log, repo, v, "courses")
}

func NewInstructorService(log *slog.Logger, repo repository.InstructorRepository, v *validator.Validate) *InstructorService {
	return newService[models.Instructor, models.InstructorPatch](log, repo, v, "instructors")
}

func newService[T Entity, P any](log *slog.Logger, repo repository.Collection[T], v *validator.Validate, collection string) *Service[T, P] {
	return &Service[T, P]{
		log:        log,
		repo:       repo,
		validate:   v,
		collection: collection,
	}
}

// ListAll returns every row, newest first.
func (s *Service[T, P]) ListAll(ctx context.Context) []T {
	const op = "services.content.ListAll"

	return s.list(ctx, op, "list_all", repository.ListFilter{})
}

// ListVisible returns published rows, featured first then most recent.
func (s *Service[T, P]) ListVisible(ctx context.Context) []T {
	const op = "services.content.ListVisible"

	return s.list(ctx, op, "list_visible", repository.ListFilter{VisibleOnly: true})
}

func (s *Service[T, P]) list(ctx context.Context, op, metric string, filter repository.ListFilter) []T {
	log := s.log.With(
		slog.String("op", op),
		slog.String("collection", s.collection),
	)

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		s.fail(metric)
		log.Error("failed to list rows", sl.Err(err))
		return []T{}
	}

	if !filter.VisibleOnly {
		return items
	}

	// hidden rows never leave the façade, whatever the store returned
	visible := make([]T, 0, len(items))
	for _, it := range items {
		if it.IsVisible() {
			visible = append(visible, it)
		}
	}

	if dropped := len(items) - len(visible); dropped > 0 {
		log.Warn("store returned hidden rows for a visible listing", slog.Int("dropped", dropped))
	}

	return visible
}

// Get returns a single row without side effects.
func (s *Service[T, P]) Get(ctx context.Context, id int64) (*T, error) {
	const op = "services.content.Get"

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.fail("get")
			s.log.Error("failed to get row",
				slog.String("op", op),
				slog.String("collection", s.collection),
				slog.Int64("id", id),
				sl.Err(err),
			)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return item, nil
}

// Create validates item and inserts it; the store assigns id and timestamps.
func (s *Service[T, P]) Create(ctx context.Context, item T) (*T, error) {
	const op = "services.content.Create"
	log := s.log.With(
		slog.String("op", op),
		slog.String("collection", s.collection),
	)

	if err := s.validate.Struct(item); err != nil {
		log.Warn("invalid row", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		s.fail("create")
		log.Error("failed to create row", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("row created")

	return created, nil
}

// Update merges the supplied patch fields. A missing row yields nil and an
// error wrapping storage.ErrNotFound.
func (s *Service[T, P]) Update(ctx context.Context, id int64, patch P) (*T, error) {
	const op = "services.content.Update"
	log := s.log.With(
		slog.String("op", op),
		slog.String("collection", s.collection),
		slog.Int64("id", id),
	)

	if err := s.validate.Struct(patch); err != nil {
		log.Warn("invalid patch", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := s.repo.Update(ctx, id, models.PatchFields(patch))
	if err != nil {
		s.fail("update")
		if errors.Is(err, storage.ErrNotFound) {
			log.Warn("row not found")
		} else {
			log.Error("failed to update row", sl.Err(err))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("row updated")

	return updated, nil
}

func (s *Service[T, P]) Delete(ctx context.Context, id int64) bool {
	const op = "services.content.Delete"
	log := s.log.With(
		slog.String("op", op),
		slog.String("collection", s.collection),
		slog.Int64("id", id),
	)

	if err := s.repo.Delete(ctx, id); err != nil {
		s.fail("delete")
		log.Error("failed to delete row", sl.Err(err))
		return false
	}

	log.Info("row deleted")

	return true
}

func (s *Service[T, P]) fail(op string) {
	metrics.GatewayFailures.WithLabelValues(s.collection, op).Inc()
}
