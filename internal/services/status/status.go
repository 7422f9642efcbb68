// Package services содержит бизнес-логику расчета статусов счетов:
// дата платежа за период, признак оплаты, дни до платежа и просрочка.
// Статус — чистая функция от шаблона, записи об оплате и текущей даты;
// он рассчитывается на каждый запрос и никогда не сохраняется.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/magabrotheeeer/bills-tracker/internal/lib/duedate"
	"github.com/magabrotheeeer/bills-tracker/internal/models"
)

// Окно "скоро к оплате": от 3 дней просрочки до 7 дней вперед.
const (
	dueSoonMinDays = -3
	dueSoonMaxDays = 7
)

// BillRepository определяет методы чтения шаблонов счетов.
type BillRepository interface {
	// ListActiveBills возвращает все активные шаблоны счетов.
	ListActiveBills(ctx context.Context) ([]*models.Bill, error)
	// GetBill возвращает шаблон счета по ID.
	GetBill(ctx context.Context, id uuid.UUID) (*models.Bill, error)
}

// PaymentRepository определяет методы чтения платежей за периоды.
type PaymentRepository interface {
	// ListPayments возвращает платежи за период, индексированные по ID счета.
	ListPayments(ctx context.Context, year, month int) (map[uuid.UUID]*models.Payment, error)
	// GetPayment возвращает платеж счета за период или nil.
	GetPayment(ctx context.Context, billID uuid.UUID, year, month int) (*models.Payment, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
}

// StatusService рассчитывает статусы счетов за периоды.
type StatusService struct {
	bills    BillRepository
	payments PaymentRepository
	cache    Cache
	log      *slog.Logger
	now      func() time.Time
}

// NewStatusService создает новый экземпляр StatusService.
func NewStatusService(bills BillRepository, payments PaymentRepository, cache Cache, log *slog.Logger) *StatusService {
	return &StatusService{
		bills:    bills,
		payments: payments,
		cache:    cache,
		log:      log,
		now:      time.Now,
	}
}

// Resolve рассчитывает статус счета за период (year, month).
//
// Для счета с якорем по дню месяца дата платежа — min(due_day, последний
// день месяца). Для счета с якорем по дате берется его next_due_date.
// Оплаченный счет не бывает просроченным, когда бы ни произошла оплата.
func (s *StatusService) Resolve(bill *models.Bill, payment *models.Payment, year int, month time.Month) *models.BillStatus {
	today := duedate.Midnight(s.now())

	var dueDate time.Time
	if bill.DateAnchored() {
		dueDate = duedate.Midnight(*bill.NextDueDate)
	} else {
		dueDate = duedate.InMonth(bill.DueDay, year, month)
	}

	daysUntilDue := duedate.DaysUntil(dueDate, today)
	isPaid := payment != nil
	if !isPaid && bill.DateAnchored() {
		// Оплата сдвигает next_due_date вперед, поэтому дата платежа
		// за пределами периода означает, что в этом периоде платить нечего.
		isPaid = dueDate.After(duedate.InMonth(31, year, month))
	}

	status := &models.BillStatus{
		BillID:       bill.ID,
		BillName:     bill.Name,
		Amount:       bill.Amount,
		DueDay:       bill.DueDay,
		Autopay:      bill.Autopay,
		Category:     bill.Category,
		Frequency:    bill.Frequency,
		DueDate:      dueDate,
		IsPaid:       isPaid,
		DaysUntilDue: daysUntilDue,
		IsOverdue:    daysUntilDue < 0 && !isPaid,
	}
	if isPaid {
		paidDate := payment.PaidDate
		status.PaidDate = &paidDate
	}
	return status
}

// MonthStatuses возвращает статусы всех активных счетов за период.
// Счета с автосписанием включаются: их состояние оплаты тоже видно.
func (s *StatusService) MonthStatuses(ctx context.Context, year int, month time.Month) ([]*models.BillStatus, error) {
	bills, err := s.activeBills(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := s.payments.ListPayments(ctx, year, int(month))
	if err != nil {
		return nil, err
	}

	result := make([]*models.BillStatus, 0, len(bills))
	for _, bill := range bills {
		result = append(result, s.Resolve(bill, payments[bill.ID], year, month))
	}
	return result, nil
}

// CurrentMonthStatuses возвращает статусы счетов за текущий месяц.
func (s *StatusService) CurrentMonthStatuses(ctx context.Context) ([]*models.BillStatus, error) {
	now := s.now()
	return s.MonthStatuses(ctx, now.Year(), now.Month())
}

// ResolveBill рассчитывает статус одного счета за период.
func (s *StatusService) ResolveBill(ctx context.Context, id uuid.UUID, year int, month time.Month) (*models.BillStatus, error) {
	bill, err := s.bills.GetBill(ctx, id)
	if err != nil {
		return nil, err
	}
	payment, err := s.payments.GetPayment(ctx, id, year, int(month))
	if err != nil {
		return nil, err
	}
	return s.Resolve(bill, payment, year, month), nil
}

// DueSoon возвращает счета, требующие ручной оплаты в ближайшее время:
// активные, без автосписания, неоплаченные, с платежом в окне [-3, 7] дней.
func (s *StatusService) DueSoon(ctx context.Context) ([]*models.BillStatus, error) {
	statuses, err := s.CurrentMonthStatuses(ctx)
	if err != nil {
		return nil, err
	}

	var result []*models.BillStatus
	for _, st := range statuses {
		if st.Autopay || st.IsPaid {
			continue
		}
		if st.DaysUntilDue >= dueSoonMinDays && st.DaysUntilDue <= dueSoonMaxDays {
			result = append(result, st)
		}
	}
	return result, nil
}

// Overdue возвращает просроченные счета с ручной оплатой.
// Нижней границы нет: сколь угодно старый долг остается в списке,
// пока не будет оплачен или счет не будет деактивирован.
func (s *StatusService) Overdue(ctx context.Context) ([]*models.BillStatus, error) {
	statuses, err := s.CurrentMonthStatuses(ctx)
	if err != nil {
		return nil, err
	}

	var result []*models.BillStatus
	for _, st := range statuses {
		if st.Autopay || st.IsPaid {
			continue
		}
		if st.IsOverdue {
			result = append(result, st)
		}
	}
	return result, nil
}

// Summary возвращает агрегированную сводку по счетам за период.
func (s *StatusService) Summary(ctx context.Context, year int, month time.Month) (*models.MonthSummary, error) {
	statuses, err := s.MonthStatuses(ctx, year, month)
	if err != nil {
		return nil, err
	}

	summary := &models.MonthSummary{
		Year:         year,
		Month:        int(month),
		TotalBills:   len(statuses),
		TotalAmount:  decimal.Zero,
		PaidAmount:   decimal.Zero,
		UnpaidAmount: decimal.Zero,
	}
	for _, st := range statuses {
		summary.TotalAmount = summary.TotalAmount.Add(st.Amount)
		if st.Autopay {
			summary.AutopayBills++
		} else {
			summary.ManualBills++
		}
		if st.IsPaid {
			summary.PaidBills++
			summary.PaidAmount = summary.PaidAmount.Add(st.Amount)
			continue
		}
		summary.UnpaidBills++
		summary.UnpaidAmount = summary.UnpaidAmount.Add(st.Amount)
		if st.IsOverdue {
			summary.OverdueBills++
		}
		if !st.Autopay && st.DaysUntilDue >= 0 && st.DaysUntilDue <= dueSoonMaxDays {
			summary.DueSoonBills++
		}
	}
	return summary, nil
}

// activeBills возвращает активные шаблоны, используя кеш или репозиторий.
// Кешируются только шаблоны; статусы всегда рассчитываются заново.
func (s *StatusService) activeBills(ctx context.Context) ([]*models.Bill, error) {
	const cacheKey = "bills:active"

	var cached []*models.Bill
	found, err := s.cache.Get(cacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read bills from cache", slog.Any("err", err))
	}
	if found {
		return cached, nil
	}

	bills, err := s.bills.ListActiveBills(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(cacheKey, bills, time.Hour); err != nil {
		s.log.Warn("failed to cache bills", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return bills, nil
}
