package repository

import (
	"context"
	"encoding/json"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"art_academy/internal/domain/models"
)

// Collection is the row-level contract shared by the four content collections.
type Collection[T any] interface {
	Create(ctx context.Context, item T) (*T, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*T, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*T, error)
	List(ctx context.Context, filter ListFilter) ([]T, error)
}

type GalleryRepository interface {
	Collection[models.GalleryItem]
}

type CourseRepository interface {
	Collection[models.Course]
}

type InstructorRepository interface {
	Collection[models.Instructor]
}

type TechniqueRepository interface {
	Collection[models.DrawingTechnique]
	IncrementViewCount(ctx context.Context, id int64) (*models.DrawingTechnique, error)
}

type SettingsRepository interface {
	Get(ctx context.Context, key string) (json.RawMessage, error)
	Upsert(ctx context.Context, key string, value json.RawMessage) error
}

// ListFilter narrows a listing. Zero values mean no restriction.
type ListFilter struct {
	VisibleOnly bool
	Category    string
	Difficulty  string
	Search      string
	IDs         []int64
}

func (f ListFilter) apply(b sq.SelectBuilder) sq.SelectBuilder {
	if f.Category != "" {
		b = b.Where(sq.Eq{"category": f.Category})
	}

	if f.Difficulty != "" {
		b = b.Where(sq.Eq{"difficulty_level": f.Difficulty})
	}

	if f.Search != "" {
		p := containsPattern(f.Search)
		b = b.Where(sq.Or{
			sq.ILike{"title": p},
			sq.ILike{"description": p},
			sq.ILike{"content": p},
		})
	}

	if f.IDs != nil {
		b = b.Where("id = ANY(?)", pq.Array(f.IDs))
	}

	return b
}
