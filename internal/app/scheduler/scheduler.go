// Package scheduler содержит приложение планировщика уведомлений.
//
// Планировщик по таймеру обходит активные счета и публикует положенные
// уведомления в очередь, откуда их забирает отправитель.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/bills-tracker/internal/cache"
	"github.com/magabrotheeeer/bills-tracker/internal/config"
	"github.com/magabrotheeeer/bills-tracker/internal/rabbitmq"
	alertservice "github.com/magabrotheeeer/bills-tracker/internal/services/alert"
	statusservice "github.com/magabrotheeeer/bills-tracker/internal/services/status"
	"github.com/magabrotheeeer/bills-tracker/internal/storage/repository"
)

// App представляет приложение планировщика.
type App struct {
	dispatcher *alertservice.DispatcherService
	interval   time.Duration
	conn       *amqp.Connection
	ch         *amqp.Channel
	logger     *slog.Logger
}

func waitForDB(db *repository.Storage) error {
	for range 10 {
		err := repository.CheckDatabaseReady(db)
		if err == nil {
			return nil
		}
		time.Sleep(3 * time.Second)
	}
	return fmt.Errorf("database not ready after retries")
}

// New создает новый экземпляр приложения планировщика.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	conn, err := rabbitmq.Connect(cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("failed to connect RabbitMQ: %w", err)
	}

	queues := rabbitmq.GetAlertQueues()
	ch, err := rabbitmq.SetupChannel(conn, queues)
	if err != nil {
		closeResources(nil, conn, logger)
		return nil, fmt.Errorf("failed to setup RabbitMQ channel: %w", err)
	}

	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		closeResources(ch, conn, logger)
		return nil, fmt.Errorf("failed to connect storage: %w", err)
	}

	if err := waitForDB(db); err != nil {
		closeResources(ch, conn, logger)
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		closeResources(ch, conn, logger)
		return nil, fmt.Errorf("cache not initialized: %w", err)
	}

	statusService := statusservice.NewStatusService(db, db, cacheRedis, logger)
	dispatcher := alertservice.NewDispatcherService(statusService, db, db, nil, logger)

	return &App{
		dispatcher: dispatcher,
		interval:   cfg.CheckInterval,
		conn:       conn,
		ch:         ch,
		logger:     logger,
	}, nil
}

func closeResources(ch *amqp.Channel, conn *amqp.Connection, logger *slog.Logger) {
	if ch != nil {
		if err := ch.Close(); err != nil {
			logger.Error("failed to close channel", "error", err)
		}
	}
	if conn != nil {
		if err := conn.Close(); err != nil {
			logger.Error("failed to close connection", "error", err)
		}
	}
}

// Run запускает планировщик: первый проход сразу, далее по таймеру.
func (a *App) Run(ctx context.Context) error {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	a.check(ctx)

	for {
		select {
		case <-ticker.C:
			a.check(ctx)
		case <-ctx.Done():
			a.logger.Info("shutting down scheduler service")

			if err := a.ch.Close(); err != nil {
				a.logger.Error("failed to close channel", slog.Any("err", err))
			}
			if err := a.conn.Close(); err != nil {
				a.logger.Error("failed to close connection", slog.Any("err", err))
			}
			return nil
		}
	}
}

func (a *App) check(ctx context.Context) {
	summary := a.dispatcher.RunPublish(ctx, a.ch)
	a.logger.Info("scheduled alert check finished",
		slog.Int("sent", summary.Sent),
		slog.Int("skipped", summary.Skipped),
		slog.Int("errors", len(summary.Errors)),
	)
	for _, e := range summary.Errors {
		a.logger.Error("alert check error", slog.String("detail", e))
	}
}
