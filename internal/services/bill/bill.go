// Package services содержит бизнес-логику управления шаблонами счетов:
// создание, чтение, обновление, мягкое удаление и отметка об оплате.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/magabrotheeeer/bills-tracker/internal/lib/duedate"
	"github.com/magabrotheeeer/bills-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/bills-tracker/internal/models"
	"github.com/magabrotheeeer/bills-tracker/internal/storage/repository"
)

// Ошибки валидации данных счета.
var (
	ErrInvalidAmount    = errors.New("amount must be greater than zero")
	ErrInvalidFrequency = errors.New("frequency must be one of: weekly, monthly, quarterly, yearly")
	ErrInvalidAnchor    = errors.New("exactly one of due_day or next_due_date must be set")
	ErrInvalidDueDate   = errors.New("next_due_date must be in YYYY-MM-DD format")
	ErrInvalidReminder  = errors.New("reminder_days_before must not be negative")
)

// BillRepository определяет методы хранилища для работы со счетами и платежами.
type BillRepository interface {
	CreateBill(ctx context.Context, bill *models.Bill) (uuid.UUID, error)
	GetBill(ctx context.Context, id uuid.UUID) (*models.Bill, error)
	ListActiveBills(ctx context.Context) ([]*models.Bill, error)
	UpdateBill(ctx context.Context, bill *models.Bill, id uuid.UUID) (int, error)
	SoftDeleteBill(ctx context.Context, id uuid.UUID) (int, error)
	SetAutopay(ctx context.Context, id uuid.UUID, autopay bool) (int, error)
	UpdateNextDueDate(ctx context.Context, id uuid.UUID, next time.Time) (int, error)
	UpsertPayment(ctx context.Context, payment *models.Payment) (*models.Payment, error)
	GetPayment(ctx context.Context, billID uuid.UUID, year, month int) (*models.Payment, error)
}

// AlertLog — журнал уведомлений для информационных записей о действиях.
type AlertLog interface {
	AppendAlert(ctx context.Context, billID uuid.UUID, alertType models.AlertType, message string) (bool, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// BillService реализует операции над шаблонами счетов.
type BillService struct {
	repo   BillRepository
	alerts AlertLog
	cache  Cache
	log    *slog.Logger
	now    func() time.Time
}

// NewBillService создает новый экземпляр BillService.
func NewBillService(repo BillRepository, alerts AlertLog, cache Cache, log *slog.Logger) *BillService {
	return &BillService{
		repo:   repo,
		alerts: alerts,
		cache:  cache,
		log:    log,
		now:    time.Now,
	}
}

// Create валидирует данные и создает новый шаблон счета.
func (s *BillService) Create(ctx context.Context, req *models.DummyBill) (*models.Bill, error) {
	const op = "services.BillService.Create"

	bill, err := buildBill(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	id, err := s.repo.CreateBill(ctx, bill)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	bill.ID = id

	s.logLifecycle(ctx, bill, models.AlertBillAdded,
		fmt.Sprintf("📝 Bill added: %s ($%s)", bill.Name, bill.Amount.StringFixed(2)))
	s.invalidate(bill.ID)
	return bill, nil
}

// Read возвращает шаблон счета по ID, используя кеш.
func (s *BillService) Read(ctx context.Context, id uuid.UUID) (*models.Bill, error) {
	const op = "services.BillService.Read"
	cacheKey := billCacheKey(id)

	var cached models.Bill
	found, err := s.cache.Get(cacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read bill from cache", sl.Err(err))
	}
	if found {
		return &cached, nil
	}

	bill, err := s.repo.GetBill(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.cache.Set(cacheKey, bill, time.Hour); err != nil {
		s.log.Warn("failed to cache bill", slog.String("key", cacheKey), sl.Err(err))
	}
	return bill, nil
}

// List возвращает все активные шаблоны счетов.
func (s *BillService) List(ctx context.Context) ([]*models.Bill, error) {
	const op = "services.BillService.List"
	bills, err := s.repo.ListActiveBills(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return bills, nil
}

// Update валидирует данные и перезаписывает шаблон счета.
func (s *BillService) Update(ctx context.Context, id uuid.UUID, req *models.DummyBill) (*models.Bill, error) {
	const op = "services.BillService.Update"

	bill, err := buildBill(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	count, err := s.repo.UpdateBill(ctx, bill, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if count == 0 {
		return nil, fmt.Errorf("%s: %w", op, repository.ErrBillNotFound)
	}
	bill.ID = id

	s.logLifecycle(ctx, bill, models.AlertBillUpdated,
		fmt.Sprintf("✏️ Bill updated: %s ($%s)", bill.Name, bill.Amount.StringFixed(2)))
	s.invalidate(id)
	return bill, nil
}

// Remove мягко удаляет шаблон счета. История платежей и журнал
// уведомлений сохраняются.
func (s *BillService) Remove(ctx context.Context, id uuid.UUID) error {
	const op = "services.BillService.Remove"

	bill, err := s.repo.GetBill(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	count, err := s.repo.SoftDeleteBill(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if count == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrBillNotFound)
	}

	s.logLifecycle(ctx, bill, models.AlertBillDeleted,
		fmt.Sprintf("🗑️ Bill deleted: %s", bill.Name))
	s.invalidate(id)
	return nil
}

// ToggleAutopay включает или выключает автосписание для счета.
func (s *BillService) ToggleAutopay(ctx context.Context, id uuid.UUID, autopay bool) error {
	const op = "services.BillService.ToggleAutopay"

	count, err := s.repo.SetAutopay(ctx, id, autopay)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if count == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrBillNotFound)
	}
	s.invalidate(id)
	return nil
}

// MarkPaid отмечает счет оплаченным за период. Операция идемпотентна:
// повторная отметка за тот же период возвращает существующий платеж.
//
// Для счета с якорем по дате период берется из его next_due_date,
// а сама дата после оплаты сдвигается вперед на одну периодичность.
func (s *BillService) MarkPaid(ctx context.Context, id uuid.UUID, req *models.DummyPayment) (*models.Payment, error) {
	const op = "services.BillService.MarkPaid"

	bill, err := s.repo.GetBill(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := s.now()
	year, month := now.Year(), int(now.Month())
	if bill.DateAnchored() {
		year, month = bill.NextDueDate.Year(), int(bill.NextDueDate.Month())
	}
	if req != nil && req.Year != 0 {
		year = req.Year
	}
	if req != nil && req.Month != 0 {
		month = req.Month
	}

	amount := bill.Amount
	if req != nil && req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidAmount)
		}
		amount = *req.Amount
	}

	method := models.PaymentMethodManual
	if bill.Autopay {
		method = models.PaymentMethodAutopay
	}

	payment, err := s.repo.UpsertPayment(ctx, &models.Payment{
		BillID:   id,
		Year:     year,
		Month:    month,
		PaidDate: duedate.Midnight(now),
		Amount:   amount,
		Method:   method,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if bill.DateAnchored() {
		next := duedate.Advance(duedate.Midnight(*bill.NextDueDate), bill.Frequency)
		if _, err := s.repo.UpdateNextDueDate(ctx, id, next); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	s.logLifecycle(ctx, bill, models.AlertPaymentRecorded,
		fmt.Sprintf("💰 Payment recorded: %s ($%s) for %d-%02d", bill.Name, amount.StringFixed(2), year, month))
	s.invalidate(id)
	return payment, nil
}

// logLifecycle пишет информационную запись о действии пользователя.
// Такие записи не доставляются получателю и не дедуплицируются;
// ошибка записи не считается ошибкой самой операции.
func (s *BillService) logLifecycle(ctx context.Context, bill *models.Bill, alertType models.AlertType, message string) {
	if _, err := s.alerts.AppendAlert(ctx, bill.ID, alertType, message); err != nil {
		s.log.Warn("failed to log lifecycle alert",
			slog.String("bill", bill.Name),
			slog.String("alert_type", string(alertType)),
			sl.Err(err))
	}
}

func (s *BillService) invalidate(id uuid.UUID) {
	for _, key := range []string{billCacheKey(id), "bills:active"} {
		if err := s.cache.Invalidate(key); err != nil {
			s.log.Warn("failed to invalidate cache", slog.String("key", key), sl.Err(err))
		}
	}
}

func billCacheKey(id uuid.UUID) string {
	return "bill:" + id.String()
}

// buildBill конвертирует данные запроса в доменную модель, проверяя
// инварианты: положительная сумма, известная периодичность и ровно один
// способ привязки даты платежа.
func buildBill(req *models.DummyBill) (*models.Bill, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	frequency := models.Frequency(req.Frequency)
	switch frequency {
	case models.FrequencyWeekly, models.FrequencyMonthly, models.FrequencyQuarterly, models.FrequencyYearly:
	default:
		return nil, ErrInvalidFrequency
	}

	if (req.DueDay == 0) == (req.NextDueDate == "") {
		return nil, ErrInvalidAnchor
	}

	bill := &models.Bill{
		Name:               req.Name,
		Amount:             req.Amount,
		Frequency:          frequency,
		DueDay:             req.DueDay,
		Autopay:            req.Autopay,
		ReminderEnabled:    true,
		ReminderDaysBefore: 3,
		Category:           req.Category,
		Notes:              req.Notes,
		Active:             true,
	}
	if req.ReminderEnabled != nil {
		bill.ReminderEnabled = *req.ReminderEnabled
	}
	if req.ReminderDaysBefore != nil {
		if *req.ReminderDaysBefore < 0 {
			return nil, ErrInvalidReminder
		}
		bill.ReminderDaysBefore = *req.ReminderDaysBefore
	}
	if req.NextDueDate != "" {
		next, err := time.Parse("2006-01-02", req.NextDueDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidDueDate, req.NextDueDate)
		}
		bill.NextDueDate = &next
	}
	return bill, nil
}
