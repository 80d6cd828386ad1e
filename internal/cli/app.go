// Package cli wires pagestate's dependencies for the command line.
package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bnema/pagestate/internal/application/usecase"
	"github.com/bnema/pagestate/internal/cli/styles"
	"github.com/bnema/pagestate/internal/domain/build"
	"github.com/bnema/pagestate/internal/domain/entity"
	"github.com/bnema/pagestate/internal/domain/repository"
	"github.com/bnema/pagestate/internal/infrastructure/config"
	"github.com/bnema/pagestate/internal/infrastructure/persistence/memory"
	"github.com/bnema/pagestate/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/pagestate/internal/logging"
)

// Options are the command-line overrides applied on top of the config file.
type Options struct {
	ConfigFile string
	Profile    string
	LogLevel   string
}

// App holds CLI dependencies.
type App struct {
	Config      *config.Config
	Theme       *styles.Theme
	BuildInfo   build.Info
	Preferences *usecase.PreferenceStore

	db  *sql.DB
	ctx context.Context
}

// NewApp loads configuration and opens the profile store.
// An unusable store is not fatal: preferences then live for this run only.
func NewApp(opts Options) (*App, error) {
	mgr, err := config.NewManager(opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	if opts.Profile != "" {
		mgr.Override("profile", opts.Profile)
	}
	if opts.LogLevel != "" {
		mgr.Override("logging.level", opts.LogLevel)
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	cfg := mgr.Get()

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)
	if used := mgr.ConfigFileUsed(); used != "" {
		logger.Debug().Str("config", used).Msg("config loaded")
	}

	app := &App{
		Config: cfg,
		Theme:  styles.NewTheme(entity.ThemeDark),
		ctx:    ctx,
	}
	app.Preferences = usecase.NewPreferenceStore(app.openRepository(ctx))
	return app, nil
}

func (a *App) openRepository(ctx context.Context) repository.PreferenceRepository {
	log := logging.FromContext(ctx)

	db, err := sqlite.NewConnection(ctx, a.Config.Database.Path)
	if err != nil {
		log.Warn().Err(err).Str("db_path", a.Config.Database.Path).
			Msg("profile store unavailable, preferences will not persist")
		return nil
	}
	a.db = db
	log.Debug().Str("db_path", a.Config.Database.Path).Str("profile", a.Config.Profile).Msg("database connected")
	return sqlite.NewPreferenceRepository(db)
}

// NewMemoryApp builds an App backed by an in-memory store.
func NewMemoryApp(ctx context.Context, cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &App{
		Config:      cfg,
		Theme:       styles.NewTheme(entity.ThemeDark),
		Preferences: usecase.NewPreferenceStore(memory.NewPreferenceRepository()),
		ctx:         ctx,
	}
}

// Close releases all resources.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	if err := sqlite.Close(a.db); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	a.db = nil
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
