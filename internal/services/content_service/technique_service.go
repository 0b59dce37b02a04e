package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"art_academy/internal/domain/models"
	"art_academy/internal/lib/logger/sl"
	"art_academy/internal/repository"
	"art_academy/internal/storage"
)

type TechniqueService struct {
	*Service[models.DrawingTechnique, models.DrawingTechniquePatch]
	techniques repository.TechniqueRepository
}

func NewTechniqueService(log *slog.Logger, repo repository.TechniqueRepository, v *validator.Validate) *TechniqueService {
	return &TechniqueService{
		Service:    newService[models.DrawingTechnique, models.DrawingTechniquePatch](log, repo, v, "techniques"),
		techniques: repo,
	}
}

// GetByID returns a technique and counts the view in the same round trip.
func (s *TechniqueService) GetByID(ctx context.Context, id int64) (*models.DrawingTechnique, error) {
	const op = "services.TechniqueService.GetByID"

	d, err := s.techniques.IncrementViewCount(ctx, id)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.fail("get")
			s.log.Error("failed to get technique",
				slog.String("op", op),
				slog.Int64("id", id),
				sl.Err(err),
			)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return d, nil
}

func (s *TechniqueService) ListByCategory(ctx context.Context, category string) []models.DrawingTechnique {
	const op = "services.TechniqueService.ListByCategory"

	return s.list(ctx, op, "list_by_category", repository.ListFilter{VisibleOnly: true, Category: category})
}

func (s *TechniqueService) ListByDifficulty(ctx context.Context, level models.SkillLevel) []models.DrawingTechnique {
	const op = "services.TechniqueService.ListByDifficulty"

	return s.list(ctx, op, "list_by_difficulty", repository.ListFilter{VisibleOnly: true, Difficulty: string(level)})
}

// Search matches query against title, description and content, case-insensitively.
func (s *TechniqueService) Search(ctx context.Context, query string) []models.DrawingTechnique {
	const op = "services.TechniqueService.Search"

	query = strings.TrimSpace(query)
	if query == "" {
		return s.ListVisible(ctx)
	}

	return s.list(ctx, op, "search", repository.ListFilter{VisibleOnly: true, Search: query})
}

// ListRelated resolves related_techniques ids to visible techniques, skipping d itself.
func (s *TechniqueService) ListRelated(ctx context.Context, d models.DrawingTechnique) []models.DrawingTechnique {
	const op = "services.TechniqueService.ListRelated"

	ids := make([]int64, 0, len(d.RelatedTechniques))
	for _, id := range d.RelatedTechniques {
		if id != d.ID {
			ids = append(ids, id)
		}
	}

	if len(ids) == 0 {
		return []models.DrawingTechnique{}
	}

	return s.list(ctx, op, "list_related", repository.ListFilter{VisibleOnly: true, IDs: ids})
}
