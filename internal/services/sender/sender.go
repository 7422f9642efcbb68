// Package services содержит логику доставки уведомлений из очереди:
// отправитель разбирает сообщения планировщика и передает их получателю.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/bills-tracker/internal/models"
)

// Notifier доставляет текст уведомления получателю.
type Notifier interface {
	Send(ctx context.Context, message string) error
}

// SenderService обрабатывает сообщения очереди уведомлений.
type SenderService struct {
	notifier Notifier
	log      *slog.Logger
}

// NewSenderService создает новый экземпляр SenderService.
func NewSenderService(notifier Notifier, log *slog.Logger) *SenderService {
	return &SenderService{notifier: notifier, log: log}
}

// HandleDueAlert разбирает сообщение очереди и доставляет его.
// Ошибка возвращается вызывающему, чтобы сообщение вернулось в очередь.
func (s *SenderService) HandleDueAlert(ctx context.Context, body []byte) error {
	const op = "services.SenderService.HandleDueAlert"

	var msg models.AlertMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.notifier.Send(ctx, msg.Message); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("queued alert delivered",
		slog.String("bill", msg.BillName),
		slog.String("alert_type", string(msg.Type)))
	return nil
}
