package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/bills-tracker/internal/models"
)

const billColumns = `id, name, amount, frequency, due_day, next_due_date, autopay,
	reminder_enabled, reminder_days_before, category, notes, active, created_at, updated_at`

func scanBill(row interface{ Scan(...any) error }) (*models.Bill, error) {
	var b models.Bill
	var dueDay sql.NullInt64
	var nextDueDate sql.NullTime
	if err := row.Scan(&b.ID, &b.Name, &b.Amount, &b.Frequency, &dueDay, &nextDueDate,
		&b.Autopay, &b.ReminderEnabled, &b.ReminderDaysBefore, &b.Category, &b.Notes,
		&b.Active, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	if dueDay.Valid {
		b.DueDay = int(dueDay.Int64)
	}
	if nextDueDate.Valid {
		d := nextDueDate.Time
		b.NextDueDate = &d
	}
	return &b, nil
}

// nullableAnchor раскладывает якорь счета на пару nullable-колонок.
func nullableAnchor(b *models.Bill) (any, any) {
	var dueDay any
	var nextDueDate any
	if b.DueDay > 0 {
		dueDay = b.DueDay
	}
	if b.NextDueDate != nil {
		nextDueDate = *b.NextDueDate
	}
	return dueDay, nextDueDate
}

// CreateBill вставляет новый шаблон счета и возвращает его ID.
func (s *Storage) CreateBill(ctx context.Context, bill *models.Bill) (uuid.UUID, error) {
	const op = "storage.CreateBill"
	select {
	case <-ctx.Done():
		return uuid.Nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	dueDay, nextDueDate := nullableAnchor(bill)
	query := `INSERT INTO bills (name, amount, frequency, due_day, next_due_date, autopay,
				  reminder_enabled, reminder_days_before, category, notes, active)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, TRUE)
			  RETURNING id`
	var newID uuid.UUID
	err := s.DB.QueryRowContext(ctx, query,
		bill.Name, bill.Amount, bill.Frequency, dueDay, nextDueDate, bill.Autopay,
		bill.ReminderEnabled, bill.ReminderDaysBefore, bill.Category, bill.Notes).Scan(&newID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetBill возвращает шаблон счета по его ID.
func (s *Storage) GetBill(ctx context.Context, id uuid.UUID) (*models.Bill, error) {
	const op = "storage.GetBill"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + billColumns + ` FROM bills WHERE id = $1`
	bill, err := scanBill(s.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, ErrBillNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return bill, nil
}

// ListActiveBills возвращает все активные шаблоны счетов,
// отсортированные по дню платежа.
func (s *Storage) ListActiveBills(ctx context.Context) ([]*models.Bill, error) {
	const op = "storage.ListActiveBills"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + billColumns + ` FROM bills
			  WHERE active = TRUE
			  ORDER BY due_day NULLS LAST, next_due_date`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []*models.Bill
	for rows.Next() {
		bill, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, bill)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateBill обновляет шаблон счета по его ID и возвращает количество
// изменённых строк. Изменение затрагивает только будущие периоды:
// записи о прошлых платежах остаются нетронутыми.
func (s *Storage) UpdateBill(ctx context.Context, bill *models.Bill, id uuid.UUID) (int, error) {
	const op = "storage.UpdateBill"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	dueDay, nextDueDate := nullableAnchor(bill)
	query := `UPDATE bills
			  SET name = $1, amount = $2, frequency = $3, due_day = $4, next_due_date = $5,
			      autopay = $6, reminder_enabled = $7, reminder_days_before = $8,
			      category = $9, notes = $10, updated_at = now()
			  WHERE id = $11 AND active = TRUE`
	result, err := s.DB.ExecContext(ctx, query,
		bill.Name, bill.Amount, bill.Frequency, dueDay, nextDueDate,
		bill.Autopay, bill.ReminderEnabled, bill.ReminderDaysBefore,
		bill.Category, bill.Notes, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// SoftDeleteBill помечает счет неактивным. Запись никогда не удаляется
// физически, чтобы сохранить ссылочную целостность журнала и платежей.
func (s *Storage) SoftDeleteBill(ctx context.Context, id uuid.UUID) (int, error) {
	const op = "storage.SoftDeleteBill"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE bills SET active = FALSE, updated_at = now() WHERE id = $1 AND active = TRUE`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// SetAutopay переключает флаг автосписания.
func (s *Storage) SetAutopay(ctx context.Context, id uuid.UUID, autopay bool) (int, error) {
	const op = "storage.SetAutopay"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE bills SET autopay = $1, updated_at = now() WHERE id = $2 AND active = TRUE`
	result, err := s.DB.ExecContext(ctx, query, autopay, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// UpdateNextDueDate сдвигает дату платежа счета с якорем по дате.
func (s *Storage) UpdateNextDueDate(ctx context.Context, id uuid.UUID, next time.Time) (int, error) {
	const op = "storage.UpdateNextDueDate"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE bills SET next_due_date = $1, updated_at = now()
			  WHERE id = $2 AND next_due_date IS NOT NULL`
	result, err := s.DB.ExecContext(ctx, query, next, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
