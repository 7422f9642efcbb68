package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/bills-tracker/internal/models"
)

const defaultAlertLimit = 50

// AlertRepository — операции над журналом уведомлений.
type AlertRepository interface {
	AppendAlert(ctx context.Context, billID uuid.UUID, alertType models.AlertType, message string) (bool, error)
	ListAlerts(ctx context.Context, limit int) ([]*models.Alert, error)
	AcknowledgeAlert(ctx context.Context, id int64) error
}

// AlertService обслуживает журнал уведомлений и тестовую отправку.
type AlertService struct {
	repo     AlertRepository
	notifier Notifier
	log      *slog.Logger
}

// NewAlertService создает новый экземпляр AlertService.
func NewAlertService(repo AlertRepository, notifier Notifier, log *slog.Logger) *AlertService {
	return &AlertService{repo: repo, notifier: notifier, log: log}
}

// List возвращает последние записи журнала уведомлений.
func (s *AlertService) List(ctx context.Context, limit int) ([]*models.Alert, error) {
	const op = "services.AlertService.List"
	if limit <= 0 {
		limit = defaultAlertLimit
	}
	alerts, err := s.repo.ListAlerts(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return alerts, nil
}

// Acknowledge помечает запись журнала прочитанной.
func (s *AlertService) Acknowledge(ctx context.Context, id int64) error {
	const op = "services.AlertService.Acknowledge"
	if err := s.repo.AcknowledgeAlert(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// SendTest отправляет тестовое уведомление для проверки канала доставки
// и записывает его в журнал без привязки к счету. Дневная дедупликация
// на тестовые уведомления не распространяется.
func (s *AlertService) SendTest(ctx context.Context) error {
	const op = "services.AlertService.SendTest"

	message := "🔔 Test alert from Bills Tracker! Your notifications are working."
	if err := s.notifier.Send(ctx, message); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if _, err := s.repo.AppendAlert(ctx, uuid.Nil, models.AlertTest, message); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("test alert sent")
	return nil
}
