package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"art_academy/internal/storage"
)

type SettingsRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewSettingsRepo(db *pgxpool.Pool) *SettingsRepo {
	return &SettingsRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *SettingsRepo) Get(ctx context.Context, key string) (json.RawMessage, error) {
	const op = "repository.SettingsRepo.Get"

	query, args, err := r.sb.Select("setting_value").
		From("settings").
		Where(sq.Eq{"setting_key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var raw []byte
	if err := r.db.QueryRow(ctx, query, args...).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNoSuchKey)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return json.RawMessage(raw), nil
}

// Upsert создает или перезаписывает значение настройки
func (r *SettingsRepo) Upsert(ctx context.Context, key string, value json.RawMessage) error {
	const op = "repository.SettingsRepo.Upsert"

	if !json.Valid(value) {
		return fmt.Errorf("%s: %w", op, storage.ErrBadPayload)
	}

	query, args, err := r.sb.Insert("settings").
		Columns("setting_key", "setting_value", "updated_at").
		Values(key, string(value), time.Now().UTC()).
		Suffix("ON CONFLICT (setting_key) DO UPDATE SET setting_value = EXCLUDED.setting_value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
