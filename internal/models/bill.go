// Package models содержит доменные структуры: шаблон счета, платеж за период,
// рассчитанный статус счета и запись журнала уведомлений,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Frequency определяет периодичность счета.
type Frequency string

// Поддерживаемые периодичности.
const (
	FrequencyWeekly    Frequency = "weekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
)

// Bill представляет собой шаблон регулярного счета.
//
// Дата платежа задается одним из двух способов:
//   - DueDay (1–31) — счет привязан к дню месяца, дата для конкретного периода
//     рассчитывается как min(DueDay, последний день месяца);
//   - NextDueDate — счет привязан к конкретной дате, которая сдвигается вперед
//     на одну периодичность при каждой оплате.
//
// Ровно одно из полей задано: DueDay == 0 означает якорь по дате,
// NextDueDate == nil означает якорь по дню месяца.
type Bill struct {
	ID                 uuid.UUID       `json:"id"`                      // Уникальный идентификатор счета
	Name               string          `json:"name"`                    // Отображаемое название
	Amount             decimal.Decimal `json:"amount"`                  // Сумма счета, > 0
	Frequency          Frequency       `json:"frequency"`               // Периодичность
	DueDay             int             `json:"due_day,omitempty"`       // День месяца (1-31), 0 если якорь по дате
	NextDueDate        *time.Time      `json:"next_due_date,omitempty"` // Следующая дата платежа, nil если якорь по дню месяца
	Autopay            bool            `json:"autopay"`                 // Счет оплачивается автоматически
	ReminderEnabled    bool            `json:"reminder_enabled"`        // Включено ли заблаговременное напоминание
	ReminderDaysBefore int             `json:"reminder_days_before"`    // За сколько дней напоминать, >= 0
	Category           string          `json:"category"`                // Категория счета
	Notes              string          `json:"notes,omitempty"`         // Произвольные заметки
	Active             bool            `json:"active"`                  // Флаг мягкого удаления
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// DateAnchored сообщает, привязан ли счет к конкретной дате платежа.
func (b *Bill) DateAnchored() bool {
	return b.NextDueDate != nil
}

// DummyBill используется для приёма данных счета из JSON-запроса,
// прежде чем конвертировать их в Bill.
// Дата приходит строкой, чтобы её можно было валидировать и парсить вручную.
type DummyBill struct {
	Name               string          `json:"name" validate:"required"`                              // Название счета
	Amount             decimal.Decimal `json:"amount" validate:"required"`                            // Сумма (>0, проверяется в сервисе)
	Frequency          string          `json:"frequency" validate:"required"`                         // weekly|monthly|quarterly|yearly
	DueDay             int             `json:"due_day,omitempty" validate:"omitempty,min=1,max=31"`   // День месяца
	NextDueDate        string          `json:"next_due_date,omitempty" validate:"omitempty"`          // Дата в формате 2006-01-02
	Autopay            bool            `json:"autopay"`                                               // Автосписание
	ReminderEnabled    *bool           `json:"reminder_enabled,omitempty"`                            // По умолчанию true
	ReminderDaysBefore *int            `json:"reminder_days_before,omitempty" validate:"omitempty,min=0"` // По умолчанию 3
	Category           string          `json:"category"`                                              // Категория
	Notes              string          `json:"notes,omitempty"`                                       // Заметки
}
