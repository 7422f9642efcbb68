// Package services содержит логику формирования и отправки уведомлений
// о предстоящих и просроченных платежах.
package services

import (
	"fmt"

	"github.com/magabrotheeeer/bills-tracker/internal/models"
)

// Decision — решение о отправке уведомления для счета.
type Decision struct {
	Type    models.AlertType
	Message string
}

// DecideAlert выбирает для счета не более одного уведомления за запуск.
// Приоритет: просрочка, платеж сегодня, напоминание за день, раннее
// напоминание. Оплаченные счета и автосписания без просрочки пропускаются.
// Тип, уже отправленный сегодня, подавляется — следующие по приоритету
// типы при этом не рассматриваются. Срок раннего напоминания берется из
// счета как есть: значения 0 и 1 перекрываются правилами выше по цепочке.
func DecideAlert(status *models.BillStatus, bill *models.Bill, sentToday map[models.AlertType]bool) *Decision {
	if status.IsPaid {
		return nil
	}
	if bill.Autopay && !status.IsOverdue {
		return nil
	}

	var alertType models.AlertType
	switch {
	case status.IsOverdue:
		alertType = models.AlertOverdue
	case status.DaysUntilDue == 0:
		alertType = models.AlertDueToday
	case status.DaysUntilDue == 1:
		alertType = models.AlertReminder
	case bill.ReminderEnabled && status.DaysUntilDue == bill.ReminderDaysBefore:
		alertType = models.AlertAdvanceReminder
	default:
		return nil
	}

	if sentToday[alertType] {
		return nil
	}
	return &Decision{
		Type:    alertType,
		Message: renderMessage(alertType, status, bill),
	}
}

func renderMessage(alertType models.AlertType, status *models.BillStatus, bill *models.Bill) string {
	amount := status.Amount.StringFixed(2)

	switch alertType {
	case models.AlertOverdue:
		daysOverdue := -status.DaysUntilDue
		return fmt.Sprintf("🚨 OVERDUE: %s ($%s) was due %d %s ago. Please pay immediately!",
			status.BillName, amount, daysOverdue, pluralDays(daysOverdue))
	case models.AlertDueToday:
		return fmt.Sprintf("⏰ DUE TODAY: %s ($%s) is due today. Don't forget to pay!",
			status.BillName, amount)
	case models.AlertReminder:
		return fmt.Sprintf("📅 REMINDER: Tomorrow you have %s ($%s) due. Plan ahead!",
			status.BillName, amount)
	case models.AlertAdvanceReminder:
		if bill.DateAnchored() {
			return fmt.Sprintf("🔔 HEADS UP: %s ($%s) is due in %d days on %s.",
				status.BillName, amount, status.DaysUntilDue, status.DueDate.Format("Jan 2"))
		}
		return fmt.Sprintf("🔔 HEADS UP: %s ($%s) is due in %d days on the %d%s.",
			status.BillName, amount, status.DaysUntilDue, status.DueDate.Day(), ordinalSuffix(status.DueDate.Day()))
	default:
		return ""
	}
}

func pluralDays(n int) string {
	if n == 1 {
		return "day"
	}
	return "days"
}

// ordinalSuffix возвращает английский порядковый суффикс для дня месяца.
func ordinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
