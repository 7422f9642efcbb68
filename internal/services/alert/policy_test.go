package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/bills-tracker/internal/models"
)

func testBill(autopay, reminderEnabled bool, reminderDaysBefore int) *models.Bill {
	return &models.Bill{
		ID:                 uuid.New(),
		Name:               "Electric",
		Amount:             decimal.NewFromFloat(85.50),
		Frequency:          models.FrequencyMonthly,
		DueDay:             22,
		Autopay:            autopay,
		ReminderEnabled:    reminderEnabled,
		ReminderDaysBefore: reminderDaysBefore,
		Active:             true,
	}
}

func testStatus(bill *models.Bill, daysUntilDue int, isPaid bool) *models.BillStatus {
	return &models.BillStatus{
		BillID:       bill.ID,
		BillName:     bill.Name,
		Amount:       bill.Amount,
		DueDay:       bill.DueDay,
		Autopay:      bill.Autopay,
		DueDate:      time.Date(2026, time.March, 22, 0, 0, 0, 0, time.UTC),
		IsPaid:       isPaid,
		DaysUntilDue: daysUntilDue,
		IsOverdue:    daysUntilDue < 0 && !isPaid,
	}
}

func TestDecideAlert(t *testing.T) {
	tests := []struct {
		name         string
		autopay      bool
		reminder     bool
		reminderDays int
		daysUntilDue int
		isPaid       bool
		sentToday    map[models.AlertType]bool
		wantType     models.AlertType
		wantNil      bool
	}{
		{
			name:         "overdue bill",
			daysUntilDue: -3,
			wantType:     models.AlertOverdue,
		},
		{
			name:         "due today",
			daysUntilDue: 0,
			wantType:     models.AlertDueToday,
		},
		{
			name:         "due tomorrow",
			daysUntilDue: 1,
			wantType:     models.AlertReminder,
		},
		{
			name:         "advance reminder when enabled",
			reminder:     true,
			reminderDays: 3,
			daysUntilDue: 3,
			wantType:     models.AlertAdvanceReminder,
		},
		{
			name:         "advance reminder honors custom lead time",
			reminder:     true,
			reminderDays: 5,
			daysUntilDue: 5,
			wantType:     models.AlertAdvanceReminder,
		},
		{
			name:         "explicit zero lead time disables advance reminder",
			reminder:     true,
			reminderDays: 0,
			daysUntilDue: 3,
			wantNil:      true,
		},
		{
			name:         "explicit zero lead time still alerts on due day",
			reminder:     true,
			reminderDays: 0,
			daysUntilDue: 0,
			wantType:     models.AlertDueToday,
		},
		{
			name:         "no advance reminder when disabled",
			reminderDays: 3,
			daysUntilDue: 3,
			wantNil:      true,
		},
		{
			name:         "paid bill is always silent",
			daysUntilDue: -3,
			isPaid:       true,
			wantNil:      true,
		},
		{
			name:         "autopay suppresses everything except overdue",
			autopay:      true,
			daysUntilDue: 0,
			wantNil:      true,
		},
		{
			name:         "autopay bill still alerts when overdue",
			autopay:      true,
			daysUntilDue: -1,
			wantType:     models.AlertOverdue,
		},
		{
			name:         "type already sent today is suppressed",
			daysUntilDue: -3,
			sentToday:    map[models.AlertType]bool{models.AlertOverdue: true},
			wantNil:      true,
		},
		{
			name:         "suppression does not fall through to lower priority",
			daysUntilDue: 0,
			sentToday:    map[models.AlertType]bool{models.AlertDueToday: true},
			wantNil:      true,
		},
		{
			name:         "quiet bill far from due date",
			daysUntilDue: 10,
			wantNil:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bill := testBill(tt.autopay, tt.reminder, tt.reminderDays)
			status := testStatus(bill, tt.daysUntilDue, tt.isPaid)

			decision := DecideAlert(status, bill, tt.sentToday)

			if tt.wantNil {
				assert.Nil(t, decision)
				return
			}
			require.NotNil(t, decision)
			assert.Equal(t, tt.wantType, decision.Type)
			assert.NotEmpty(t, decision.Message)
		})
	}
}

func TestDecideAlertMessages(t *testing.T) {
	bill := testBill(false, true, 3)

	tests := []struct {
		name         string
		daysUntilDue int
		want         string
	}{
		{
			name:         "overdue singular day",
			daysUntilDue: -1,
			want:         "🚨 OVERDUE: Electric ($85.50) was due 1 day ago. Please pay immediately!",
		},
		{
			name:         "overdue plural days",
			daysUntilDue: -4,
			want:         "🚨 OVERDUE: Electric ($85.50) was due 4 days ago. Please pay immediately!",
		},
		{
			name:         "due today",
			daysUntilDue: 0,
			want:         "⏰ DUE TODAY: Electric ($85.50) is due today. Don't forget to pay!",
		},
		{
			name:         "reminder",
			daysUntilDue: 1,
			want:         "📅 REMINDER: Tomorrow you have Electric ($85.50) due. Plan ahead!",
		},
		{
			name:         "advance reminder with ordinal day",
			daysUntilDue: 3,
			want:         "🔔 HEADS UP: Electric ($85.50) is due in 3 days on the 22nd.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := testStatus(bill, tt.daysUntilDue, false)
			decision := DecideAlert(status, bill, nil)
			require.NotNil(t, decision)
			assert.Equal(t, tt.want, decision.Message)
		})
	}
}

func TestDecideAlertAdvanceReminderDateAnchored(t *testing.T) {
	nextDue := time.Date(2026, time.April, 3, 0, 0, 0, 0, time.UTC)
	bill := &models.Bill{
		ID:              uuid.New(),
		Name:            "Insurance",
		Amount:          decimal.NewFromFloat(120.00),
		Frequency:          models.FrequencyQuarterly,
		NextDueDate:        &nextDue,
		ReminderEnabled:    true,
		ReminderDaysBefore: 3,
		Active:             true,
	}
	status := &models.BillStatus{
		BillID:       bill.ID,
		BillName:     bill.Name,
		Amount:       bill.Amount,
		DueDate:      nextDue,
		DaysUntilDue: 3,
	}

	decision := DecideAlert(status, bill, nil)

	require.NotNil(t, decision)
	assert.Equal(t, models.AlertAdvanceReminder, decision.Type)
	assert.Equal(t, "🔔 HEADS UP: Insurance ($120.00) is due in 3 days on Apr 3.", decision.Message)
}

func TestOrdinalSuffix(t *testing.T) {
	tests := []struct {
		day  int
		want string
	}{
		{1, "st"}, {2, "nd"}, {3, "rd"}, {4, "th"},
		{11, "th"}, {12, "th"}, {13, "th"},
		{21, "st"}, {22, "nd"}, {23, "rd"}, {31, "st"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ordinalSuffix(tt.day), "day %d", tt.day)
	}
}
