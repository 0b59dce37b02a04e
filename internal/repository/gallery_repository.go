package repository

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"

	"art_academy/internal/domain/models"
)

var galleryColumns = []string{
	"id", "title", "title_en", "description", "description_en", "image_url",
	"category", "category_en", "student_name", "student_name_en",
	"instructor", "instructor_en", "completion_date", "featured", "visible",
	"skill_level", "skill_level_en", "created_at", "updated_at",
}

type GalleryRepo struct {
	t table[models.GalleryItem]
}

func NewGalleryRepo(db *pgxpool.Pool) *GalleryRepo {
	return &GalleryRepo{
		t: newTable(db, "gallery", galleryColumns,
			[]string{"featured DESC", "completion_date DESC", "id DESC"}, scanGalleryItem),
	}
}

func scanGalleryItem(row rowScanner) (models.GalleryItem, error) {
	var g models.GalleryItem

	err := row.Scan(
		&g.ID,
		&g.Title,
		&g.TitleEn,
		&g.Description,
		&g.DescriptionEn,
		&g.ImageURL,
		&g.Category,
		&g.CategoryEn,
		&g.StudentName,
		&g.StudentNameEn,
		&g.Instructor,
		&g.InstructorEn,
		&g.CompletionDate,
		&g.Featured,
		&g.Visible,
		&g.SkillLevel,
		&g.SkillLevelEn,
		&g.CreatedAt,
		&g.UpdatedAt,
	)

	return g, err
}

// Create вставляет работу студента, id и временные метки назначает база
func (r *GalleryRepo) Create(ctx context.Context, g models.GalleryItem) (*models.GalleryItem, error) {
	const op = "repository.GalleryRepo.Create"

	return r.t.insert(ctx, op, map[string]interface{}{
		"title":           g.Title,
		"title_en":        g.TitleEn,
		"description":     g.Description,
		"description_en":  g.DescriptionEn,
		"image_url":       g.ImageURL,
		"category":        g.Category,
		"category_en":     g.CategoryEn,
		"student_name":    g.StudentName,
		"student_name_en": g.StudentNameEn,
		"instructor":      g.Instructor,
		"instructor_en":   g.InstructorEn,
		"completion_date": g.CompletionDate,
		"featured":        g.Featured,
		"visible":         g.Visible,
		"skill_level":     g.SkillLevel,
		"skill_level_en":  g.SkillLevelEn,
	})
}

func (r *GalleryRepo) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.GalleryItem, error) {
	const op = "repository.GalleryRepo.Update"

	return r.t.update(ctx, op, id, fields)
}

func (r *GalleryRepo) Delete(ctx context.Context, id int64) error {
	const op = "repository.GalleryRepo.Delete"

	return r.t.delete(ctx, op, id)
}

func (r *GalleryRepo) GetByID(ctx context.Context, id int64) (*models.GalleryItem, error) {
	const op = "repository.GalleryRepo.GetByID"

	return r.t.get(ctx, op, id)
}

// List returns newest first, or featured first then by completion date when VisibleOnly is set.
func (r *GalleryRepo) List(ctx context.Context, filter ListFilter) ([]models.GalleryItem, error) {
	const op = "repository.GalleryRepo.List"

	return r.t.list(ctx, op, filter)
}
