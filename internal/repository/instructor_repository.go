package repository

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"

	"art_academy/internal/domain/models"
)

var instructorColumns = []string{
	"id", "name", "name_en", "title", "title_en", "image_url", "profile_url",
	"experience", "experience_en", "specialties", "specialties_en",
	"rating", "students_count", "description", "description_en", "visible",
	"created_at", "updated_at",
}

type InstructorRepo struct {
	t table[models.Instructor]
}

// NewInstructorRepo: instructors have no featured flag, so the visible
// listing is ordered by recency only.
func NewInstructorRepo(db *pgxpool.Pool) *InstructorRepo {
	return &InstructorRepo{
		t: newTable(db, "instructors", instructorColumns,
			[]string{"created_at DESC", "id DESC"}, scanInstructor),
	}
}

func scanInstructor(row rowScanner) (models.Instructor, error) {
	var i models.Instructor

	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.NameEn,
		&i.Title,
		&i.TitleEn,
		&i.ImageURL,
		&i.ProfileURL,
		&i.Experience,
		&i.ExperienceEn,
		&i.Specialties,
		&i.SpecialtiesEn,
		&i.Rating,
		&i.StudentsCount,
		&i.Description,
		&i.DescriptionEn,
		&i.Visible,
		&i.CreatedAt,
		&i.UpdatedAt,
	)

	return i, err
}

func (r *InstructorRepo) Create(ctx context.Context, i models.Instructor) (*models.Instructor, error) {
	const op = "repository.InstructorRepo.Create"

	return r.t.insert(ctx, op, map[string]interface{}{
		"name":           i.Name,
		"name_en":        i.NameEn,
		"title":          i.Title,
		"title_en":       i.TitleEn,
		"image_url":      i.ImageURL,
		"profile_url":    i.ProfileURL,
		"experience":     i.Experience,
		"experience_en":  i.ExperienceEn,
		"specialties":    i.Specialties,
		"specialties_en": i.SpecialtiesEn,
		"rating":         i.Rating,
		"students_count": i.StudentsCount,
		"description":    i.Description,
		"description_en": i.DescriptionEn,
		"visible":        i.Visible,
	})
}

func (r *InstructorRepo) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Instructor, error) {
	const op = "repository.InstructorRepo.Update"

	return r.t.update(ctx, op, id, fields)
}

func (r *InstructorRepo) Delete(ctx context.Context, id int64) error {
	const op = "repository.InstructorRepo.Delete"

	return r.t.delete(ctx, op, id)
}

func (r *InstructorRepo) GetByID(ctx context.Context, id int64) (*models.Instructor, error) {
	const op = "repository.InstructorRepo.GetByID"

	return r.t.get(ctx, op, id)
}

func (r *InstructorRepo) List(ctx context.Context, filter ListFilter) ([]models.Instructor, error) {
	const op = "repository.InstructorRepo.List"

	return r.t.list(ctx, op, filter)
}
