package records

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/nkmlv/photobooth-booking/pkg/psqlbuilder"
)

// PostgresStore реализация Store поверх таблицы booking_records (key/value).
// Контракт остаётся плоским get/set: реляционность здесь не используется,
// таблица служит только долговременным хранилищем строк.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore создает Store поверх Postgres
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Get возвращает значение по ключу
func (s *PostgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := psqlbuilder.Select("value").
		From("booking_records").
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("%w: Get - build select query: %v", ErrRead, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: Get - execute select: %v", ErrRead, err)
	}

	return value, true, nil
}

// Set сохраняет значение по ключу (upsert)
func (s *PostgresStore) Set(ctx context.Context, key string, value string) error {
	query, args, err := psqlbuilder.Insert("booking_records").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Set - build upsert query: %v", ErrWrite, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Set - execute upsert: %v", ErrWrite, err)
	}

	return nil
}
