package models

import (
	"time"

	"github.com/google/uuid"
)

// AlertType определяет тип уведомления в журнале.
type AlertType string

// Типы уведомлений. Первые четыре генерирует планировщик и на них
// распространяется дедупликация "не чаще раза в день"; остальные —
// информационные записи о действиях пользователя.
const (
	AlertAdvanceReminder AlertType = "advance_reminder"
	AlertReminder        AlertType = "reminder"
	AlertDueToday        AlertType = "due_today"
	AlertOverdue         AlertType = "overdue"
	AlertBillAdded       AlertType = "bill_added"
	AlertBillUpdated     AlertType = "bill_updated"
	AlertBillDeleted     AlertType = "bill_deleted"
	AlertPaymentRecorded AlertType = "payment_recorded"
	AlertTest            AlertType = "test"
)

// Scheduled сообщает, подпадает ли тип под дневную дедупликацию.
func (t AlertType) Scheduled() bool {
	switch t {
	case AlertAdvanceReminder, AlertReminder, AlertDueToday, AlertOverdue:
		return true
	}
	return false
}

// Alert — запись журнала уведомлений. Журнал append-only и служит
// одновременно лентой активности и реестром дедупликации;
// изменяется только флаг Acknowledged.
type Alert struct {
	ID           int64     `json:"id"`
	BillID       uuid.UUID `json:"bill_id,omitempty"` // uuid.Nil для тестовых уведомлений
	Type         AlertType `json:"alert_type"`
	Message      string    `json:"message"`
	SentAt       time.Time `json:"sent_at"`
	Acknowledged bool      `json:"acknowledged"`
}

// AlertMessage — полезная нагрузка, публикуемая планировщиком в очередь
// для последующей доставки отправителем.
type AlertMessage struct {
	BillID   uuid.UUID `json:"bill_id"`
	BillName string    `json:"bill_name"`
	Type     AlertType `json:"alert_type"`
	Message  string    `json:"message"`
}
