package duedate

import (
	"testing"
	"time"

	"github.com/magabrotheeeer/bills-tracker/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAdvance_TableTests(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		freq models.Frequency
		want time.Time
	}{
		{
			name: "weekly adds seven days",
			in:   date(2025, time.January, 1),
			freq: models.FrequencyWeekly,
			want: date(2025, time.January, 8),
		},
		{
			name: "weekly crosses month boundary",
			in:   date(2025, time.January, 28),
			freq: models.FrequencyWeekly,
			want: date(2025, time.February, 4),
		},
		{
			name: "monthly keeps day of month",
			in:   date(2025, time.March, 15),
			freq: models.FrequencyMonthly,
			want: date(2025, time.April, 15),
		},
		{
			name: "monthly clamps Jan 31 to Feb 28",
			in:   date(2025, time.January, 31),
			freq: models.FrequencyMonthly,
			want: date(2025, time.February, 28),
		},
		{
			name: "monthly clamps Jan 31 to Feb 29 in leap year",
			in:   date(2024, time.January, 31),
			freq: models.FrequencyMonthly,
			want: date(2024, time.February, 29),
		},
		{
			name: "monthly clamps Mar 31 to Apr 30",
			in:   date(2025, time.March, 31),
			freq: models.FrequencyMonthly,
			want: date(2025, time.April, 30),
		},
		{
			name: "monthly rolls over year",
			in:   date(2025, time.December, 10),
			freq: models.FrequencyMonthly,
			want: date(2026, time.January, 10),
		},
		{
			name: "quarterly adds three months",
			in:   date(2025, time.January, 15),
			freq: models.FrequencyQuarterly,
			want: date(2025, time.April, 15),
		},
		{
			name: "quarterly clamps Nov 30 to Feb 28",
			in:   date(2025, time.November, 30),
			freq: models.FrequencyQuarterly,
			want: date(2026, time.February, 28),
		},
		{
			name: "yearly adds one year",
			in:   date(2025, time.June, 1),
			freq: models.FrequencyYearly,
			want: date(2026, time.June, 1),
		},
		{
			name: "yearly clamps Feb 29 to Feb 28",
			in:   date(2024, time.February, 29),
			freq: models.FrequencyYearly,
			want: date(2025, time.February, 28),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Advance(tt.in, tt.freq)
			if !got.Equal(tt.want) {
				t.Errorf("Advance(%s, %s) = %s, want %s",
					tt.in.Format("2006-01-02"), tt.freq, got.Format("2006-01-02"), tt.want.Format("2006-01-02"))
			}
		})
	}
}

func TestAdvance_NeverMovesBackward(t *testing.T) {
	freqs := []models.Frequency{
		models.FrequencyWeekly,
		models.FrequencyMonthly,
		models.FrequencyQuarterly,
		models.FrequencyYearly,
	}
	for _, freq := range freqs {
		d := date(2024, time.January, 31)
		for range 48 {
			next := Advance(d, freq)
			if !next.After(d) {
				t.Fatalf("Advance(%s, %s) = %s did not move forward", d, freq, next)
			}
			d = next
		}
	}
}

func TestAdvance_Deterministic(t *testing.T) {
	in := date(2025, time.January, 31)
	first := Advance(in, models.FrequencyMonthly)
	second := Advance(in, models.FrequencyMonthly)
	if !first.Equal(second) {
		t.Errorf("Advance is not deterministic: %s vs %s", first, second)
	}
}

func TestInMonth_TableTests(t *testing.T) {
	tests := []struct {
		name   string
		dueDay int
		year   int
		month  time.Month
		want   time.Time
	}{
		{"regular day", 15, 2025, time.March, date(2025, time.March, 15)},
		{"day 31 in 30-day month", 31, 2025, time.April, date(2025, time.April, 30)},
		{"day 31 in february", 31, 2025, time.February, date(2025, time.February, 28)},
		{"day 31 in leap february", 31, 2024, time.February, date(2024, time.February, 29)},
		{"day 30 in february", 30, 2025, time.February, date(2025, time.February, 28)},
		{"first day", 1, 2025, time.June, date(2025, time.June, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InMonth(tt.dueDay, tt.year, tt.month)
			if !got.Equal(tt.want) {
				t.Errorf("InMonth(%d, %d, %s) = %s, want %s",
					tt.dueDay, tt.year, tt.month, got.Format("2006-01-02"), tt.want.Format("2006-01-02"))
			}
		})
	}
}

func TestDaysUntil(t *testing.T) {
	today := date(2025, time.March, 12)

	tests := []struct {
		name string
		due  time.Time
		want int
	}{
		{"due in three days", date(2025, time.March, 15), 3},
		{"due today", today, 0},
		{"due tomorrow", date(2025, time.March, 13), 1},
		{"one day overdue", date(2025, time.March, 11), -1},
		{"feb 28 seen from mar 1", date(2025, time.February, 28), -12},
		{"ignores time of day", time.Date(2025, time.March, 15, 23, 59, 0, 0, time.UTC), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysUntil(tt.due, today); got != tt.want {
				t.Errorf("DaysUntil(%s, %s) = %d, want %d",
					tt.due.Format("2006-01-02"), today.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestDaysUntil_AcrossDSTSpringForward(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	// Ночь 8 марта 2026 в Нью-Йорке на час короче: разница между полуночами
	// 71 час, но календарных дней по-прежнему три.
	today := time.Date(2026, time.March, 7, 0, 0, 0, 0, ny)
	due := time.Date(2026, time.March, 10, 0, 0, 0, 0, ny)
	if got := DaysUntil(due, today); got != 3 {
		t.Errorf("DaysUntil = %d, want 3", got)
	}
}

func TestDaysUntil_LocalTodayAgainstUTCDueDate(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	due := InMonth(15, 2026, time.June)
	today := Midnight(time.Date(2026, time.June, 12, 9, 30, 0, 0, ny))
	if got := DaysUntil(due, today); got != 3 {
		t.Errorf("DaysUntil = %d, want 3", got)
	}
}

func TestDaysUntil_Feb28OverdueOnMarchFirst(t *testing.T) {
	due := InMonth(31, 2025, time.February)
	today := date(2025, time.March, 1)
	if got := DaysUntil(due, today); got != -1 {
		t.Errorf("DaysUntil = %d, want -1", got)
	}
}
