package repository

import (
	"context"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/magabrotheeeer/bills-tracker/internal/migrations"
	"github.com/magabrotheeeer/bills-tracker/internal/models"
)

// setupTestDatabase поднимает PostgreSQL в контейнере, применяет миграции
// и возвращает готовое хранилище вместе с функцией очистки.
func setupTestDatabase(t *testing.T) (*Storage, func()) {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("bills_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForListeningPort(nat.Port("5432/tcp")).WithStartupTimeout(60*time.Second),
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		),
	)
	require.NoError(t, err)

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	storage, err := New(connStr)
	require.NoError(t, err)

	require.NoError(t, migrations.Run(storage.DB, "../../../migrations"))

	cleanup := func() {
		_ = storage.DB.Close()
		_ = container.Terminate(ctx)
	}
	return storage, cleanup
}

// TestDataFactory содержит методы для создания тестовых данных
type TestDataFactory struct {
	storage *Storage
}

// NewTestDataFactory создает новую фабрику тестовых данных
func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

// CreateMonthlyBill создает тестовый счет с якорем по дню месяца.
func (f *TestDataFactory) CreateMonthlyBill(t *testing.T, name string, amount float64, dueDay int, autopay bool) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := f.storage.DB.QueryRow(`INSERT INTO bills
		(name, amount, frequency, due_day, autopay, reminder_enabled, reminder_days_before, category)
		VALUES ($1, $2, 'monthly', $3, $4, TRUE, 3, 'test') RETURNING id`,
		name, amount, dueDay, autopay).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateDateAnchoredBill создает тестовый счет с якорем по дате.
func (f *TestDataFactory) CreateDateAnchoredBill(t *testing.T, name string, amount float64, freq models.Frequency, nextDue time.Time) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := f.storage.DB.QueryRow(`INSERT INTO bills
		(name, amount, frequency, next_due_date, reminder_enabled, reminder_days_before, category)
		VALUES ($1, $2, $3, $4, TRUE, 3, 'test') RETURNING id`,
		name, amount, freq, nextDue).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreatePayment создает тестовую запись об оплате.
func (f *TestDataFactory) CreatePayment(t *testing.T, billID uuid.UUID, year, month int, amount float64) {
	t.Helper()
	_, err := f.storage.DB.Exec(`INSERT INTO bill_payments
		(bill_id, year, month, paid_date, amount, payment_method)
		VALUES ($1, $2, $3, CURRENT_DATE, $4, 'manual')`,
		billID, year, month, amount)
	require.NoError(t, err)
}

// TestBillData содержит стандартные тестовые данные счета
type TestBillData struct {
	Name               string
	Amount             decimal.Decimal
	Frequency          models.Frequency
	DueDay             int
	Autopay            bool
	ReminderEnabled    bool
	ReminderDaysBefore int
}

// GetTestBillData возвращает стандартные тестовые данные счета
func GetTestBillData() TestBillData {
	return TestBillData{
		Name:               "Electric Bill",
		Amount:             decimal.NewFromFloat(120.50),
		Frequency:          models.FrequencyMonthly,
		DueDay:             15,
		Autopay:            false,
		ReminderEnabled:    true,
		ReminderDaysBefore: 3,
	}
}
