package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/bills-tracker/internal/models"
)

// AppendAlert добавляет запись в журнал уведомлений. Журнал append-only.
//
// Для типов планировщика уникальный индекс (bill_id, alert_type, sent_on)
// гарантирует не более одной записи в день; конкурирующая вставка молча
// проигрывает, и тогда inserted == false. Информационные типы вставляются
// без ограничений.
func (s *Storage) AppendAlert(ctx context.Context, billID uuid.UUID, alertType models.AlertType, message string) (inserted bool, err error) {
	const op = "storage.AppendAlert"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var id any
	if billID != uuid.Nil {
		id = billID
	}
	query := `INSERT INTO bill_alerts (bill_id, alert_type, message)
			  VALUES ($1, $2, $3)
			  ON CONFLICT DO NOTHING
			  RETURNING id`
	var newID int64
	err = s.DB.QueryRowContext(ctx, query, id, alertType, message).Scan(&newID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return true, nil
}

// AlertExistsToday сообщает, было ли уже сегодня уведомление данного типа
// по данному счету. Используется политикой уведомлений для дедупликации.
func (s *Storage) AlertExistsToday(ctx context.Context, billID uuid.UUID, alertType models.AlertType) (bool, error) {
	const op = "storage.AlertExistsToday"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT EXISTS (
				SELECT 1 FROM bill_alerts
				WHERE bill_id = $1 AND alert_type = $2 AND sent_on = CURRENT_DATE
			  )`
	var exists bool
	if err := s.DB.QueryRowContext(ctx, query, billID, alertType).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}

// SentToday возвращает типы уведомлений, уже отправленные сегодня по счету.
// Позволяет диспетчеру обойтись одним запросом на счет.
func (s *Storage) SentToday(ctx context.Context, billID uuid.UUID) (map[models.AlertType]bool, error) {
	const op = "storage.SentToday"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT alert_type FROM bill_alerts
			  WHERE bill_id = $1 AND sent_on = CURRENT_DATE`
	rows, err := s.DB.QueryContext(ctx, query, billID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	result := make(map[models.AlertType]bool)
	for rows.Next() {
		var alertType models.AlertType
		if err := rows.Scan(&alertType); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result[alertType] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListAlerts возвращает последние записи журнала уведомлений.
func (s *Storage) ListAlerts(ctx context.Context, limit int) ([]*models.Alert, error) {
	const op = "storage.ListAlerts"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, bill_id, alert_type, message, sent_at, acknowledged
			  FROM bill_alerts
			  ORDER BY sent_at DESC
			  LIMIT $1`
	rows, err := s.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []*models.Alert
	for rows.Next() {
		var a models.Alert
		var billID uuid.NullUUID
		if err := rows.Scan(&a.ID, &billID, &a.Type, &a.Message, &a.SentAt, &a.Acknowledged); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		a.BillID = billID.UUID
		result = append(result, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// AcknowledgeAlert помечает запись журнала прочитанной.
// Единственная разрешенная мутация журнала.
func (s *Storage) AcknowledgeAlert(ctx context.Context, id int64) error {
	const op = "storage.AcknowledgeAlert"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE bill_alerts SET acknowledged = TRUE WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrAlertNotFound)
	}
	return nil
}
