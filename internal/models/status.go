package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BillStatus — рассчитанное состояние счета за один период.
// Никогда не сохраняется: это чистая функция от шаблона,
// записи об оплате и текущей даты.
type BillStatus struct {
	BillID       uuid.UUID       `json:"bill_id"`
	BillName     string          `json:"bill_name"`
	Amount       decimal.Decimal `json:"amount"`
	DueDay       int             `json:"due_day,omitempty"`
	Autopay      bool            `json:"autopay"`
	Category     string          `json:"category"`
	Frequency    Frequency       `json:"frequency"`
	DueDate      time.Time       `json:"due_date"`
	IsPaid       bool            `json:"is_paid"`
	PaidDate     *time.Time      `json:"paid_date,omitempty"`
	DaysUntilDue int             `json:"days_until_due"` // Отрицательное значение — просрочка
	IsOverdue    bool            `json:"is_overdue"`
}

// MonthSummary — агрегированная сводка по счетам за месяц.
type MonthSummary struct {
	Year          int             `json:"year"`
	Month         int             `json:"month"`
	TotalBills    int             `json:"total_bills"`
	AutopayBills  int             `json:"autopay_bills"`
	ManualBills   int             `json:"manual_bills"`
	PaidBills     int             `json:"paid_bills"`
	UnpaidBills   int             `json:"unpaid_bills"`
	OverdueBills  int             `json:"overdue_bills"`
	DueSoonBills  int             `json:"due_soon_bills"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	UnpaidAmount  decimal.Decimal `json:"unpaid_amount"`
}
