// Package sender содержит приложение отправителя уведомлений:
// потребляет сообщения очереди и доставляет их получателю.
package sender

import (
	"context"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/bills-tracker/internal/config"
	"github.com/magabrotheeeer/bills-tracker/internal/notifier"
	"github.com/magabrotheeeer/bills-tracker/internal/rabbitmq"
	senderservice "github.com/magabrotheeeer/bills-tracker/internal/services/sender"
)

// App представляет приложение отправителя.
type App struct {
	conn          *amqp.Connection
	ch            *amqp.Channel
	senderService *senderservice.SenderService
	logger        *slog.Logger
}

// New создает новый экземпляр приложения отправителя.
func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	conn, err := rabbitmq.Connect(cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
	if err != nil {
		return nil, err
	}

	queues := rabbitmq.GetAlertQueues()
	ch, err := rabbitmq.SetupChannel(conn, queues)
	if err != nil {
		conn.Close()
		return nil, err
	}

	poke := notifier.NewClient(cfg.Poke)
	senderService := senderservice.NewSenderService(poke, logger)

	return &App{
		conn:          conn,
		ch:            ch,
		senderService: senderService,
		logger:        logger,
	}, nil
}

// Run запускает потребителя очереди и ждет отмены контекста.
func (a *App) Run(ctx context.Context) error {
	err := rabbitmq.ConsumerMessage(ctx, a.ch, rabbitmq.DueAlertsQueue, func(body []byte) error {
		return a.senderService.HandleDueAlert(ctx, body)
	})
	if err != nil {
		a.logger.Error("failed to start alerts consumer", slog.Any("err", err))
		return err
	}

	<-ctx.Done()
	a.logger.Info("sender service shutting down gracefully")

	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close channel", slog.Any("err", err))
	}
	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close connection", slog.Any("err", err))
	}

	return nil
}
