package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/bills-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/bills-tracker/internal/metrics"
	"github.com/magabrotheeeer/bills-tracker/internal/models"
	"github.com/magabrotheeeer/bills-tracker/internal/rabbitmq"
)

// StatusProvider поставляет статусы активных счетов за текущий месяц.
type StatusProvider interface {
	CurrentMonthStatuses(ctx context.Context) ([]*models.BillStatus, error)
}

// BillProvider поставляет активные шаблоны счетов.
type BillProvider interface {
	ListActiveBills(ctx context.Context) ([]*models.Bill, error)
}

// AlertLog — журнал уведомлений с дневной дедупликацией.
type AlertLog interface {
	// SentToday возвращает типы, уже записанные для счета сегодня.
	SentToday(ctx context.Context, billID uuid.UUID) (map[models.AlertType]bool, error)
	// AppendAlert добавляет запись; false без ошибки означает,
	// что такая запись за сегодня уже есть.
	AppendAlert(ctx context.Context, billID uuid.UUID, alertType models.AlertType, message string) (bool, error)
}

// Notifier доставляет текст уведомления получателю.
type Notifier interface {
	Send(ctx context.Context, message string) error
}

// RunSummary — итог одного запуска диспетчера.
type RunSummary struct {
	Sent    int      `json:"sent"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}

// DispatcherService обходит активные счета и отправляет уведомления.
type DispatcherService struct {
	statuses StatusProvider
	bills    BillProvider
	alerts   AlertLog
	notifier Notifier
	log      *slog.Logger
}

// NewDispatcherService создает новый экземпляр DispatcherService.
func NewDispatcherService(statuses StatusProvider, bills BillProvider, alerts AlertLog, notifier Notifier, log *slog.Logger) *DispatcherService {
	return &DispatcherService{
		statuses: statuses,
		bills:    bills,
		alerts:   alerts,
		notifier: notifier,
		log:      log,
	}
}

// Run выполняет один проход по всем активным счетам: для каждого
// принимает решение, отправляет уведомление и пишет его в журнал.
// Ошибка по одному счету не прерывает обработку остальных; метод
// всегда возвращает сводку, собирая ошибки внутри нее.
func (d *DispatcherService) Run(ctx context.Context) RunSummary {
	return d.run(ctx, func(ctx context.Context, msg *models.AlertMessage) error {
		return d.notifier.Send(ctx, msg.Message)
	})
}

// RunPublish — проход планировщика: вместо прямой доставки решения
// публикуются в очередь, откуда их забирает отправитель.
func (d *DispatcherService) RunPublish(ctx context.Context, ch *amqp.Channel) RunSummary {
	return d.run(ctx, func(_ context.Context, msg *models.AlertMessage) error {
		return rabbitmq.PublishMessage(ch, rabbitmq.AlertsExchange, rabbitmq.DueRoutingKey, msg)
	})
}

func (d *DispatcherService) run(ctx context.Context, deliver func(context.Context, *models.AlertMessage) error) RunSummary {
	const op = "services.DispatcherService.run"
	metrics.DispatcherRuns.Inc()

	var summary RunSummary

	statuses, err := d.statuses.CurrentMonthStatuses(ctx)
	if err != nil {
		summary.Errors = append(summary.Errors, fmt.Sprintf("%s: %v", op, err))
		return summary
	}
	bills, err := d.bills.ListActiveBills(ctx)
	if err != nil {
		summary.Errors = append(summary.Errors, fmt.Sprintf("%s: %v", op, err))
		return summary
	}
	billsByID := make(map[uuid.UUID]*models.Bill, len(bills))
	for _, bill := range bills {
		billsByID[bill.ID] = bill
	}

	for _, status := range statuses {
		bill, ok := billsByID[status.BillID]
		if !ok {
			summary.Skipped++
			continue
		}

		sentToday, err := d.alerts.SentToday(ctx, bill.ID)
		if err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("%s: %v", bill.Name, err))
			metrics.AlertErrors.Inc()
			continue
		}

		decision := DecideAlert(status, bill, sentToday)
		if decision == nil {
			summary.Skipped++
			metrics.AlertsSkipped.Inc()
			continue
		}

		msg := &models.AlertMessage{
			BillID:   bill.ID,
			BillName: bill.Name,
			Type:     decision.Type,
			Message:  decision.Message,
		}
		if err := deliver(ctx, msg); err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("%s: %v", bill.Name, err))
			metrics.AlertErrors.Inc()
			d.log.Error("failed to deliver alert",
				slog.String("bill", bill.Name),
				slog.String("alert_type", string(decision.Type)),
				sl.Err(err))
			continue
		}

		inserted, err := d.alerts.AppendAlert(ctx, bill.ID, decision.Type, decision.Message)
		if err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("%s: %v", bill.Name, err))
			metrics.AlertErrors.Inc()
			continue
		}
		if !inserted {
			d.log.Warn("alert already logged today, delivered twice",
				slog.String("bill", bill.Name),
				slog.String("alert_type", string(decision.Type)))
		}

		summary.Sent++
		metrics.AlertsSent.WithLabelValues(string(decision.Type)).Inc()
		d.log.Info("alert sent",
			slog.String("bill", bill.Name),
			slog.String("alert_type", string(decision.Type)))
	}

	return summary
}

// FormatSummary возвращает человекочитаемый итог запуска.
func FormatSummary(s RunSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Alert check complete: %d sent, %d skipped", s.Sent, s.Skipped)
	if len(s.Errors) > 0 {
		fmt.Fprintf(&b, ", %d errors: %s", len(s.Errors), strings.Join(s.Errors, "; "))
	}
	return b.String()
}
