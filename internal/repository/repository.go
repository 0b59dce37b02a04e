package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"art_academy/internal/storage"
)

type Repository struct {
	Gallery     *GalleryRepo
	Courses     *CourseRepo
	Instructors *InstructorRepo
	Techniques  *TechniqueRepo
	Settings    *SettingsRepo
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Gallery:     NewGalleryRepo(db),
		Courses:     NewCourseRepo(db),
		Instructors: NewInstructorRepo(db),
		Techniques:  NewTechniqueRepo(db),
		Settings:    NewSettingsRepo(db),
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// table holds what the shared CRUD helpers need to know about a collection.
type table[T any] struct {
	db      *pgxpool.Pool
	sb      sq.StatementBuilderType
	name    string
	columns []string
	allowed map[string]bool
	scan    func(rowScanner) (T, error)

	// ordering of the visible listing, e.g. featured DESC, completion_date DESC
	visibleOrder []string
}

func newTable[T any](db *pgxpool.Pool, name string, columns []string, visibleOrder []string, scan func(rowScanner) (T, error)) table[T] {
	allowed := make(map[string]bool, len(columns))
	for _, c := range columns {
		switch c {
		case "id", "created_at", "updated_at", "view_count":
			continue
		}
		allowed[c] = true
	}

	return table[T]{
		db:           db,
		sb:           sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		name:         name,
		columns:      columns,
		allowed:      allowed,
		scan:         scan,
		visibleOrder: visibleOrder,
	}
}

func (t table[T]) insert(ctx context.Context, op string, values map[string]interface{}) (*T, error) {
	query, args, err := t.sb.Insert(t.name).
		SetMap(values).
		Suffix("RETURNING " + strings.Join(t.columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	item, err := t.scan(t.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &item, nil
}

// update merges only the supplied columns and always stamps updated_at,
// so an empty field set just touches the row.
func (t table[T]) update(ctx context.Context, op string, id int64, fields map[string]interface{}) (*T, error) {
	builder := t.sb.Update(t.name).
		Set("updated_at", sq.Expr("NOW()"))

	for field, value := range fields {
		if !t.allowed[field] {
			return nil, fmt.Errorf("%s: %w: %s", op, storage.ErrBadField, field)
		}

		builder = builder.Set(field, value)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(t.columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	item, err := t.scan(t.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &item, nil
}

func (t table[T]) delete(ctx context.Context, op string, id int64) error {
	query, args, err := t.sb.Delete(t.name).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	result, err := t.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (t table[T]) get(ctx context.Context, op string, id int64) (*T, error) {
	query, args, err := t.sb.Select(t.columns...).
		From(t.name).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	item, err := t.scan(t.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &item, nil
}

func (t table[T]) list(ctx context.Context, op string, filter ListFilter) ([]T, error) {
	builder := t.sb.Select(t.columns...).From(t.name)

	if filter.VisibleOnly {
		builder = builder.Where(sq.Eq{"visible": true}).OrderBy(t.visibleOrder...)
	} else {
		builder = builder.OrderBy("created_at DESC")
	}

	builder = filter.apply(builder)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := t.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := t.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
