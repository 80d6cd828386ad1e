// Package memory provides in-process repositories used for tests and as the
// degraded fallback when the profile database cannot be opened.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/bnema/pagestate/internal/domain/entity"
	"github.com/bnema/pagestate/internal/domain/repository"
)

type preferenceRepo struct {
	mu    sync.RWMutex
	prefs map[string]entity.Preference
}

// NewPreferenceRepository creates an empty in-memory preference repository.
func NewPreferenceRepository() repository.PreferenceRepository {
	return &preferenceRepo{prefs: make(map[string]entity.Preference)}
}

func (r *preferenceRepo) Get(_ context.Context, key string) (*entity.Preference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pref, ok := r.prefs[key]
	if !ok {
		return nil, nil
	}
	return &pref, nil
}

func (r *preferenceRepo) Set(_ context.Context, pref *entity.Preference) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.prefs[pref.Key] = *pref
	return nil
}

func (r *preferenceRepo) List(_ context.Context) ([]*entity.Preference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	prefs := make([]*entity.Preference, 0, len(r.prefs))
	for _, p := range r.prefs {
		prefs = append(prefs, &p)
	}
	sort.Slice(prefs, func(i, j int) bool { return prefs[i].Key < prefs[j].Key })
	return prefs, nil
}
