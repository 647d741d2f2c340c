// Package bootstrap assembles the use cases from a Config. The server and
// petctl share it so both run the same engine over the same stores.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	httpadapter "lovepet/internal/adapter/http"
	metricsinmem "lovepet/internal/adapter/metrics/inmemory"
	gormrepo "lovepet/internal/adapter/repo/gorm"
	"lovepet/internal/adapter/repo/memory"
	sqliterepo "lovepet/internal/adapter/repo/sqlite"
	"lovepet/internal/app/care"
	"lovepet/internal/app/kitchen"
	"lovepet/internal/app/petstate"
	"lovepet/internal/app/ports"
	"lovepet/internal/app/replay"
	"lovepet/internal/app/status"
	"lovepet/internal/config"
	"lovepet/internal/domain/chance"
	"lovepet/internal/domain/growth"
	"lovepet/internal/logging"
)

type App struct {
	Care    care.UseCase
	Kitchen kitchen.UseCase
	Status  status.UseCase
	Replay  replay.UseCase
	Pets    ports.PetLister
	Metrics *metricsinmem.Recorder
	Logger  *slog.Logger
	PetID   string

	closers []func() error
}

// entityStore is what every adapter offers: records plus a pet listing.
type entityStore interface {
	ports.EntityStore
	ports.PetLister
}

type stores struct {
	entities entityStore
	events   ports.EventRepository
	tx       ports.TxManager
	close    func() error
}

// Build validates cfg, opens the configured store and wires every use case.
// Logs go to logOut.
func Build(ctx context.Context, cfg *config.Config, logOut io.Writer) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	logger := logging.NewLogger(cfg.Logging.Level, logOut)

	table, err := growth.TableByProfile(cfg.Pet.GrowthProfile)
	if err != nil {
		return nil, err
	}

	st, err := openStores(ctx, cfg.Store, logger)
	if err != nil {
		return nil, err
	}

	src := chance.New(cfg.Pet.RandomSeed)
	states := petstate.Repository{Store: st.entities, Random: src, Logger: logger}
	engine := care.Engine{Random: src, Phases: table, Logger: logger}
	recorder := metricsinmem.NewRecorder()

	app := &App{
		Care: care.UseCase{
			TxManager: st.tx,
			States:    states,
			EventRepo: st.events,
			Metrics:   recorder,
			Engine:    engine,
			Now:       time.Now,
			Logger:    logger,
		},
		Kitchen: kitchen.UseCase{
			TxManager: st.tx,
			States:    states,
			EventRepo: st.events,
			Metrics:   recorder,
			Engine:    engine,
			Now:       time.Now,
			Logger:    logger,
		},
		Status:  status.UseCase{States: states, Engine: engine, Now: time.Now},
		Replay:  replay.UseCase{Events: st.events},
		Pets:    st.entities,
		Metrics: recorder,
		Logger:  logger,
		PetID:   cfg.Pet.ID,
	}
	if st.close != nil {
		app.closers = append(app.closers, st.close)
	}
	logger.Info("pet engine ready",
		"store", cfg.Store.Driver,
		"growth_profile", cfg.Pet.GrowthProfile,
		"pet_id", cfg.Pet.ID,
	)
	return app, nil
}

func openStores(ctx context.Context, cfg config.StoreConfig, logger *slog.Logger) (stores, error) {
	switch cfg.Driver {
	case config.StoreSQLite:
		db, err := sqliterepo.Open(cfg.SQLitePath)
		if err != nil {
			return stores{}, fmt.Errorf("open sqlite store: %w", err)
		}
		logger.Debug("sqlite store opened", "path", cfg.SQLitePath)
		return stores{
			entities: sqliterepo.NewEntityRepo(db),
			events:   sqliterepo.NewEventRepo(db),
			tx:       sqliterepo.NewTxManager(db),
			close:    db.Close,
		}, nil
	case config.StorePostgres:
		db, err := gormrepo.OpenPostgres(cfg.DSN)
		if err != nil {
			return stores{}, fmt.Errorf("open postgres: %w", err)
		}
		if err := gormrepo.ApplyMigrations(ctx, db, gormrepo.Migrations()); err != nil {
			return stores{}, fmt.Errorf("apply migrations: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return stores{}, err
		}
		logger.Debug("postgres store opened and migrated")
		return stores{
			entities: gormrepo.NewEntityRepo(db),
			events:   gormrepo.NewEventRepo(db),
			tx:       gormrepo.NewTxManager(db),
			close:    sqlDB.Close,
		}, nil
	default:
		store := memory.NewStore()
		return stores{
			entities: memory.NewEntityRepo(store),
			events:   memory.NewEventRepo(store),
			tx:       memory.NewTxManager(store),
		}, nil
	}
}

// HTTPHandler exposes the app over the hertz routes.
func (a *App) HTTPHandler() httpadapter.Handler {
	return httpadapter.Handler{
		CareUC:       a.Care,
		KitchenUC:    a.Kitchen,
		StatusUC:     a.Status,
		ReplayUC:     a.Replay,
		KPI:          a.Metrics,
		DefaultPetID: a.PetID,
		Logger:       a.Logger,
	}
}

func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}
