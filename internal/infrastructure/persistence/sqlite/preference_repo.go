package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/pagestate/internal/domain/entity"
	"github.com/bnema/pagestate/internal/domain/repository"
	"github.com/bnema/pagestate/internal/logging"
)

const (
	queryGetPreference = `SELECT key, value, updated_at FROM preferences WHERE key = ?`
	querySetPreference = `INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	queryListPreferences = `SELECT key, value, updated_at FROM preferences ORDER BY key`
)

type preferenceRepo struct {
	db *sql.DB
}

// NewPreferenceRepository creates a new SQLite-backed preference repository.
func NewPreferenceRepository(db *sql.DB) repository.PreferenceRepository {
	return &preferenceRepo{db: db}
}

func (r *preferenceRepo) Get(ctx context.Context, key string) (*entity.Preference, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("key", key).Msg("getting preference")

	row := r.db.QueryRowContext(ctx, queryGetPreference, key)
	pref, err := scanPreference(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get preference %q: %w", key, err)
	}
	return pref, nil
}

func (r *preferenceRepo) Set(ctx context.Context, pref *entity.Preference) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("key", pref.Key).Str("value", pref.Value).Msg("setting preference")

	updatedAt := pref.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}
	if _, err := r.db.ExecContext(ctx, querySetPreference, pref.Key, pref.Value, updatedAt.UTC()); err != nil {
		return fmt.Errorf("failed to set preference %q: %w", pref.Key, err)
	}
	return nil
}

func (r *preferenceRepo) List(ctx context.Context) ([]*entity.Preference, error) {
	rows, err := r.db.QueryContext(ctx, queryListPreferences)
	if err != nil {
		return nil, fmt.Errorf("failed to list preferences: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var prefs []*entity.Preference
	for rows.Next() {
		pref, err := scanPreference(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan preference: %w", err)
		}
		prefs = append(prefs, pref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list preferences: %w", err)
	}
	return prefs, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPreference(s scanner) (*entity.Preference, error) {
	var (
		pref      entity.Preference
		updatedAt sql.NullString
	)
	if err := s.Scan(&pref.Key, &pref.Value, &updatedAt); err != nil {
		return nil, err
	}
	pref.UpdatedAt = parseTimestamp(updatedAt.String)
	return &pref, nil
}

// parseTimestamp accepts both driver-encoded times and SQLite's CURRENT_TIMESTAMP format.
func parseTimestamp(value string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, time.DateTime} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
