// Package usecase contains the page controllers and the preference store adapter.
package usecase

import (
	"context"
	"sync"

	"github.com/bnema/pagestate/internal/domain/entity"
	"github.com/bnema/pagestate/internal/domain/repository"
	"github.com/bnema/pagestate/internal/logging"
)

// Preferences is the key-value view controllers read and write.
// Implementations never fail from the caller's perspective.
type Preferences interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
}

// PreferenceStore adapts a PreferenceRepository to Preferences.
// The first repository error switches the store to degraded mode: from then on,
// reads and writes only touch a session map that lives as long as the store.
type PreferenceStore struct {
	repo repository.PreferenceRepository

	mu       sync.Mutex
	degraded bool
	session  map[string]string
}

var _ Preferences = (*PreferenceStore)(nil)

// NewPreferenceStore creates a store over repo. A nil repo starts degraded.
func NewPreferenceStore(repo repository.PreferenceRepository) *PreferenceStore {
	return &PreferenceStore{
		repo:     repo,
		degraded: repo == nil,
		session:  make(map[string]string),
	}
}

// Get returns the value stored under key and whether it exists.
func (s *PreferenceStore) Get(ctx context.Context, key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.degraded {
		pref, err := s.repo.Get(ctx, key)
		if err == nil {
			if pref == nil {
				return "", false
			}
			return pref.Value, true
		}
		s.degrade(ctx, "get", key, err)
	}

	value, ok := s.session[key]
	return value, ok
}

// Set stores value under key.
func (s *PreferenceStore) Set(ctx context.Context, key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session[key] = value
	if s.degraded {
		return
	}
	if err := s.repo.Set(ctx, entity.NewPreference(key, value)); err != nil {
		s.degrade(ctx, "set", key, err)
		return
	}

	logging.FromContext(ctx).Debug().Str("key", key).Str("value", value).Msg("preference saved")
}

// List returns every persisted preference. In degraded mode it lists the session map.
func (s *PreferenceStore) List(ctx context.Context) ([]*entity.Preference, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.degraded {
		prefs, err := s.repo.List(ctx)
		if err == nil {
			return prefs, nil
		}
		s.degrade(ctx, "list", "", err)
	}

	prefs := make([]*entity.Preference, 0, len(s.session))
	for _, key := range sortedKeys(s.session) {
		prefs = append(prefs, &entity.Preference{Key: key, Value: s.session[key]})
	}
	return prefs, nil
}

// Degraded reports whether the store fell back to session-only memory.
func (s *PreferenceStore) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degraded
}

// degrade must be called with s.mu held.
func (s *PreferenceStore) degrade(ctx context.Context, op, key string, err error) {
	s.degraded = true
	logging.FromContext(ctx).Warn().
		Err(err).
		Str("op", op).
		Str("key", key).
		Msg("preference store unavailable, using session defaults")
}
