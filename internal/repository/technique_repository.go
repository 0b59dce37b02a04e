package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"art_academy/internal/domain/models"
	"art_academy/internal/storage"
)

var techniqueColumns = []string{
	"id", "title", "title_en", "description", "description_en", "content", "content_en",
	"difficulty_level", "difficulty_level_en", "category", "category_en",
	"tools_needed", "tools_needed_en", "steps", "steps_en", "tips", "tips_en",
	"image_url", "video_url", "estimated_time", "estimated_time_en",
	"prerequisites", "prerequisites_en", "related_techniques",
	"featured", "visible", "view_count", "created_at", "updated_at",
}

type TechniqueRepo struct {
	t table[models.DrawingTechnique]
}

func NewTechniqueRepo(db *pgxpool.Pool) *TechniqueRepo {
	return &TechniqueRepo{
		t: newTable(db, "drawing_techniques", techniqueColumns,
			[]string{"featured DESC", "created_at DESC", "id DESC"}, scanTechnique),
	}
}

func scanTechnique(row rowScanner) (models.DrawingTechnique, error) {
	var d models.DrawingTechnique

	err := row.Scan(
		&d.ID,
		&d.Title,
		&d.TitleEn,
		&d.Description,
		&d.DescriptionEn,
		&d.Content,
		&d.ContentEn,
		&d.DifficultyLevel,
		&d.DifficultyLevelEn,
		&d.Category,
		&d.CategoryEn,
		&d.ToolsNeeded,
		&d.ToolsNeededEn,
		&d.Steps,
		&d.StepsEn,
		&d.Tips,
		&d.TipsEn,
		&d.ImageURL,
		&d.VideoURL,
		&d.EstimatedTime,
		&d.EstimatedTimeEn,
		&d.Prerequisites,
		&d.PrerequisitesEn,
		&d.RelatedTechniques,
		&d.Featured,
		&d.Visible,
		&d.ViewCount,
		&d.CreatedAt,
		&d.UpdatedAt,
	)

	return d, err
}

// Create всегда начинает счётчик просмотров с нуля
func (r *TechniqueRepo) Create(ctx context.Context, d models.DrawingTechnique) (*models.DrawingTechnique, error) {
	const op = "repository.TechniqueRepo.Create"

	return r.t.insert(ctx, op, map[string]interface{}{
		"title":               d.Title,
		"title_en":            d.TitleEn,
		"description":         d.Description,
		"description_en":      d.DescriptionEn,
		"content":             d.Content,
		"content_en":          d.ContentEn,
		"difficulty_level":    d.DifficultyLevel,
		"difficulty_level_en": d.DifficultyLevelEn,
		"category":            d.Category,
		"category_en":         d.CategoryEn,
		"tools_needed":        d.ToolsNeeded,
		"tools_needed_en":     d.ToolsNeededEn,
		"steps":               d.Steps,
		"steps_en":            d.StepsEn,
		"tips":                d.Tips,
		"tips_en":             d.TipsEn,
		"image_url":           d.ImageURL,
		"video_url":           d.VideoURL,
		"estimated_time":      d.EstimatedTime,
		"estimated_time_en":   d.EstimatedTimeEn,
		"prerequisites":       d.Prerequisites,
		"prerequisites_en":    d.PrerequisitesEn,
		"related_techniques":  d.RelatedTechniques,
		"featured":            d.Featured,
		"visible":             d.Visible,
		"view_count":          0,
	})
}

func (r *TechniqueRepo) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.DrawingTechnique, error) {
	const op = "repository.TechniqueRepo.Update"

	return r.t.update(ctx, op, id, fields)
}

func (r *TechniqueRepo) Delete(ctx context.Context, id int64) error {
	const op = "repository.TechniqueRepo.Delete"

	return r.t.delete(ctx, op, id)
}

func (r *TechniqueRepo) GetByID(ctx context.Context, id int64) (*models.DrawingTechnique, error) {
	const op = "repository.TechniqueRepo.GetByID"

	return r.t.get(ctx, op, id)
}

func (r *TechniqueRepo) List(ctx context.Context, filter ListFilter) ([]models.DrawingTechnique, error) {
	const op = "repository.TechniqueRepo.List"

	return r.t.list(ctx, op, filter)
}

// IncrementViewCount bumps view_count in place and returns the updated row in
// the same round trip. updated_at is left alone: a view is not an edit.
func (r *TechniqueRepo) IncrementViewCount(ctx context.Context, id int64) (*models.DrawingTechnique, error) {
	const op = "repository.TechniqueRepo.IncrementViewCount"

	query, args, err := r.t.sb.Update(r.t.name).
		Set("view_count", sq.Expr("view_count + 1")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(r.t.columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	d, err := scanTechnique(r.t.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &d, nil
}
