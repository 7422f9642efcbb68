package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/bills-tracker/internal/models"
)

// UpsertPayment записывает факт оплаты счета за период (bill_id, year, month).
// Операция идемпотентна: при повторной оплате того же периода остается
// первая запись, дубликат не создается. Возвращает итоговую запись.
func (s *Storage) UpsertPayment(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	const op = "storage.UpsertPayment"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO bill_payments (bill_id, year, month, paid_date, amount, payment_method)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  ON CONFLICT (bill_id, year, month) DO NOTHING`
	_, err := s.DB.ExecContext(ctx, query,
		payment.BillID, payment.Year, payment.Month, payment.PaidDate, payment.Amount, payment.Method)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Запись могла существовать до вызова, поэтому перечитываем её.
	result, err := s.GetPayment(ctx, payment.BillID, payment.Year, payment.Month)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetPayment возвращает запись об оплате за период или nil, если её нет.
func (s *Storage) GetPayment(ctx context.Context, billID uuid.UUID, year, month int) (*models.Payment, error) {
	const op = "storage.GetPayment"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, bill_id, year, month, paid_date, amount, payment_method
			  FROM bill_payments
			  WHERE bill_id = $1 AND year = $2 AND month = $3`
	row := s.DB.QueryRowContext(ctx, query, billID, year, month)

	var p models.Payment
	err := row.Scan(&p.ID, &p.BillID, &p.Year, &p.Month, &p.PaidDate, &p.Amount, &p.Method)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

// ListPayments возвращает все записи об оплате за период, индексированные
// по ID счета.
func (s *Storage) ListPayments(ctx context.Context, year, month int) (map[uuid.UUID]*models.Payment, error) {
	const op = "storage.ListPayments"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, bill_id, year, month, paid_date, amount, payment_method
			  FROM bill_payments
			  WHERE year = $1 AND month = $2`
	rows, err := s.DB.QueryContext(ctx, query, year, month)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID]*models.Payment)
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(&p.ID, &p.BillID, &p.Year, &p.Month, &p.PaidDate, &p.Amount, &p.Method); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result[p.BillID] = &p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
