//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/bills-tracker/internal/models"
)

func TestStorage_CreateAndGetBill(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	data := GetTestBillData()
	bill := &models.Bill{
		Name:               data.Name,
		Amount:             data.Amount,
		Frequency:          data.Frequency,
		DueDay:             data.DueDay,
		Autopay:            data.Autopay,
		ReminderEnabled:    data.ReminderEnabled,
		ReminderDaysBefore: data.ReminderDaysBefore,
		Category:           "utilities",
	}

	id, err := storage.CreateBill(context.Background(), bill)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	got, err := storage.GetBill(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Electric Bill", got.Name)
	assert.Equal(t, 15, got.DueDay)
	assert.Nil(t, got.NextDueDate)
	assert.True(t, got.Active)
	assert.True(t, got.Amount.Equal(decimal.NewFromFloat(120.50)))
}

func TestStorage_GetBill_NotFound(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	_, err := storage.GetBill(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrBillNotFound)
}

func TestStorage_ListActiveBills_ExcludesInactive(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	keep := factory.CreateMonthlyBill(t, "Rent", 1200, 1, false)
	remove := factory.CreateMonthlyBill(t, "Old Gym", 40, 5, false)

	count, err := storage.SoftDeleteBill(context.Background(), remove)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	bills, err := storage.ListActiveBills(context.Background())
	require.NoError(t, err)
	require.Len(t, bills, 1)
	assert.Equal(t, keep, bills[0].ID)
}

func TestStorage_UpsertPayment_Idempotent(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	billID := factory.CreateMonthlyBill(t, "Internet", 60, 20, false)

	payment := &models.Payment{
		BillID:   billID,
		Year:     2025,
		Month:    3,
		PaidDate: time.Date(2025, 3, 18, 0, 0, 0, 0, time.UTC),
		Amount:   decimal.NewFromInt(60),
		Method:   models.PaymentMethodManual,
	}

	first, err := storage.UpsertPayment(context.Background(), payment)
	require.NoError(t, err)

	// Повторная оплата того же периода не создает вторую запись.
	second, err := storage.UpsertPayment(context.Background(), payment)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var total int
	require.NoError(t, storage.DB.QueryRow(
		`SELECT COUNT(*) FROM bill_payments WHERE bill_id = $1 AND year = 2025 AND month = 3`,
		billID).Scan(&total))
	assert.Equal(t, 1, total)
}

func TestStorage_AppendAlert_DeduplicatesScheduledTypes(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	billID := factory.CreateMonthlyBill(t, "Water", 35, 10, false)

	inserted, err := storage.AppendAlert(context.Background(), billID, models.AlertDueToday, "due today")
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = storage.AppendAlert(context.Background(), billID, models.AlertDueToday, "due today again")
	require.NoError(t, err)
	assert.False(t, inserted)

	exists, err := storage.AlertExistsToday(context.Background(), billID, models.AlertDueToday)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = storage.AlertExistsToday(context.Background(), billID, models.AlertOverdue)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStorage_AppendAlert_LifecycleTypesNotDeduplicated(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	billID := factory.CreateMonthlyBill(t, "Phone", 25, 7, false)

	for range 2 {
		inserted, err := storage.AppendAlert(context.Background(), billID, models.AlertBillUpdated, "bill updated")
		require.NoError(t, err)
		assert.True(t, inserted)
	}
}

func TestStorage_AcknowledgeAlert(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	billID := factory.CreateMonthlyBill(t, "Insurance", 90, 25, true)

	_, err := storage.AppendAlert(context.Background(), billID, models.AlertOverdue, "overdue")
	require.NoError(t, err)

	alerts, err := storage.ListAlerts(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.False(t, alerts[0].Acknowledged)

	require.NoError(t, storage.AcknowledgeAlert(context.Background(), alerts[0].ID))

	alerts, err = storage.ListAlerts(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.True(t, alerts[0].Acknowledged)

	require.ErrorIs(t, storage.AcknowledgeAlert(context.Background(), 99999), ErrAlertNotFound)
}
