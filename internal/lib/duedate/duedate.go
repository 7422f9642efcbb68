// Package duedate содержит календарную арифметику для регулярных счетов:
// сдвиг даты платежа на одну периодичность, расчет даты платежа в конкретном
// месяце и подсчет дней до платежа.
package duedate

import (
	"time"

	"github.com/magabrotheeeer/bills-tracker/internal/models"
)

// LastDay возвращает номер последнего дня месяца.
func LastDay(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Advance сдвигает дату платежа вперед на одну периодичность.
// Для месячных, квартальных и годовых счетов день месяца ограничивается
// последним днем результирующего месяца: 31 января + месяц = 28/29 февраля,
// 29 февраля + год = 28 февраля невисокосного года.
func Advance(d time.Time, freq models.Frequency) time.Time {
	switch freq {
	case models.FrequencyWeekly:
		return d.AddDate(0, 0, 7)
	case models.FrequencyMonthly:
		return addMonths(d, 1)
	case models.FrequencyQuarterly:
		return addMonths(d, 3)
	case models.FrequencyYearly:
		return addMonths(d, 12)
	}
	return d
}

// addMonths прибавляет n календарных месяцев, не позволяя дате
// "перетечь" в следующий месяц, как это делает time.AddDate.
func addMonths(d time.Time, n int) time.Time {
	year, month, day := d.Date()
	first := time.Date(year, month+time.Month(n), 1, 0, 0, 0, 0, d.Location())
	if last := LastDay(first.Year(), first.Month()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, d.Location())
}

// InMonth возвращает дату платежа для счета с якорем по дню месяца
// в заданном периоде: min(dueDay, последний день месяца).
// Счет "по 31-м числам" в коротком месяце приходится на его последний день.
func InMonth(dueDay, year int, month time.Month) time.Time {
	if last := LastDay(year, month); dueDay > last {
		dueDay = last
	}
	return time.Date(year, month, dueDay, 0, 0, 0, 0, time.UTC)
}

// Midnight обнуляет время, оставляя только дату.
// Система работает с точностью до дня, не до секунды.
func Midnight(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// DaysUntil считает целое число дней от today до due.
// Отрицательный результат означает просрочку, 0 — платеж сегодня.
// Сравниваются календарные даты, а не длительности: обе даты приводятся
// к полуночи UTC, где сутки всегда ровно 24 часа. Иначе переход на летнее
// время или разница поясов между due и today сдвигает результат на день.
func DaysUntil(due, today time.Time) int {
	d := utcDate(due)
	t := utcDate(today)
	return int(d.Sub(t) / (24 * time.Hour))
}

func utcDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
