package repository

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"

	"art_academy/internal/domain/models"
)

var courseColumns = []string{
	"id", "title", "title_en", "description", "description_en",
	"duration", "duration_en", "level_name", "level_name_en",
	"price", "currency", "show_price", "hide_price", "image_url",
	"features", "features_en", "instructor", "instructor_en",
	"category", "category_en", "enrollment_url", "visible", "featured",
	"created_at", "updated_at",
}

type CourseRepo struct {
	t table[models.Course]
}

func NewCourseRepo(db *pgxpool.Pool) *CourseRepo {
	return &CourseRepo{
		t: newTable(db, "courses", courseColumns,
			[]string{"featured DESC", "created_at DESC", "id DESC"}, scanCourse),
	}
}

func scanCourse(row rowScanner) (models.Course, error) {
	var c models.Course

	err := row.Scan(
		&c.ID,
		&c.Title,
		&c.TitleEn,
		&c.Description,
		&c.DescriptionEn,
		&c.Duration,
		&c.DurationEn,
		&c.LevelName,
		&c.LevelNameEn,
		&c.Price,
		&c.Currency,
		&c.ShowPrice,
		&c.HidePrice,
		&c.ImageURL,
		&c.Features,
		&c.FeaturesEn,
		&c.Instructor,
		&c.InstructorEn,
		&c.Category,
		&c.CategoryEn,
		&c.EnrollmentURL,
		&c.Visible,
		&c.Featured,
		&c.CreatedAt,
		&c.UpdatedAt,
	)

	return c, err
}

func (r *CourseRepo) Create(ctx context.Context, c models.Course) (*models.Course, error) {
	const op = "repository.CourseRepo.Create"

	return r.t.insert(ctx, op, map[string]interface{}{
		"title":          c.Title,
		"title_en":       c.TitleEn,
		"description":    c.Description,
		"description_en": c.DescriptionEn,
		"duration":       c.Duration,
		"duration_en":    c.DurationEn,
		"level_name":     c.LevelName,
		"level_name_en":  c.LevelNameEn,
		"price":          c.Price,
		"currency":       c.Currency,
		"show_price":     c.ShowPrice,
		"hide_price":     c.HidePrice,
		"image_url":      c.ImageURL,
		"features":       c.Features,
		"features_en":    c.FeaturesEn,
		"instructor":     c.Instructor,
		"instructor_en":  c.InstructorEn,
		"category":       c.Category,
		"category_en":    c.CategoryEn,
		"enrollment_url": c.EnrollmentURL,
		"visible":        c.Visible,
		"featured":       c.Featured,
	})
}

func (r *CourseRepo) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Course, error) {
	const op = "repository.CourseRepo.Update"

	return r.t.update(ctx, op, id, fields)
}

func (r *CourseRepo) Delete(ctx context.Context, id int64) error {
	const op = "repository.CourseRepo.Delete"

	return r.t.delete(ctx, op, id)
}

func (r *CourseRepo) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	const op = "repository.CourseRepo.GetByID"

	return r.t.get(ctx, op, id)
}

func (r *CourseRepo) List(ctx context.Context, filter ListFilter) ([]models.Course, error) {
	const op = "repository.CourseRepo.List"

	return r.t.list(ctx, op, filter)
}
