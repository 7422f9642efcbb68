package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod определяет способ оплаты счета.
type PaymentMethod string

// Поддерживаемые способы оплаты.
const (
	PaymentMethodAutopay PaymentMethod = "autopay"
	PaymentMethodManual  PaymentMethod = "manual"
)

// Payment представляет собой факт оплаты счета за конкретный период.
// На пару (BillID, Year, Month) существует не более одной записи.
type Payment struct {
	ID       int64           `json:"id"`
	BillID   uuid.UUID       `json:"bill_id"`
	Year     int             `json:"year"`
	Month    int             `json:"month"`
	PaidDate time.Time       `json:"paid_date"`
	Amount   decimal.Decimal `json:"amount"`
	Method   PaymentMethod   `json:"method"`
}

// DummyPayment используется для приёма данных оплаты из JSON-запроса.
// Все поля опциональны: по умолчанию оплачивается текущий месяц
// на полную сумму счета.
type DummyPayment struct {
	Year   int              `json:"year,omitempty" validate:"omitempty,min=2000"`
	Month  int              `json:"month,omitempty" validate:"omitempty,min=1,max=12"`
	Amount *decimal.Decimal `json:"amount,omitempty"` // Переопределение суммы
}
