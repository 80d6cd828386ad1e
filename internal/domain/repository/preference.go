package repository

import (
	"context"

	"github.com/bnema/pagestate/internal/domain/entity"
)

//go:generate mockgen -destination=mocks/mock_preference.go -package=mocks . PreferenceRepository

// PreferenceRepository defines operations for preference persistence.
type PreferenceRepository interface {
	// Get retrieves the preference stored under key.
	// Returns nil if the key was never written.
	Get(ctx context.Context, key string) (*entity.Preference, error)

	// Set saves or overwrites a preference.
	Set(ctx context.Context, pref *entity.Preference) error

	// List retrieves all stored preferences ordered by key.
	List(ctx context.Context) ([]*entity.Preference, error)
}
