// Package billstracker собирает HTTP-приложение: хранилище, миграции,
// кеш, канал доставки уведомлений, сервисы и маршруты.
package billstracker

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/bills-tracker/internal/cache"
	"github.com/magabrotheeeer/bills-tracker/internal/config"
	"github.com/magabrotheeeer/bills-tracker/internal/migrations"
	"github.com/magabrotheeeer/bills-tracker/internal/notifier"
	alertservice "github.com/magabrotheeeer/bills-tracker/internal/services/alert"
	billservice "github.com/magabrotheeeer/bills-tracker/internal/services/bill"
	statusservice "github.com/magabrotheeeer/bills-tracker/internal/services/status"
	"github.com/magabrotheeeer/bills-tracker/internal/storage/repository"
)

// App — HTTP-приложение трекера счетов.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

// New создает приложение со всеми зависимостями.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	poke := notifier.NewClient(cfg.Poke)

	billService := billservice.NewBillService(db, db, cacheRedis, logger)
	statusService := statusservice.NewStatusService(db, db, cacheRedis, logger)
	alertService := alertservice.NewAlertService(db, poke, logger)
	dispatcher := alertservice.NewDispatcherService(statusService, db, db, poke, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, billService, statusService, alertService, dispatcher)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if closeErr := a.cache.Close(); closeErr != nil {
			a.logger.Error("failed to close cache", slog.Any("err", closeErr))
		}
		if closeErr := a.db.DB.Close(); closeErr != nil {
			a.logger.Error("failed to close storage", slog.Any("err", closeErr))
		}
		return err
	}
}
