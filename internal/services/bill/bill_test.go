package services

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/bills-tracker/internal/models"
)

type MockBillRepository struct {
	mock.Mock
}

func (m *MockBillRepository) CreateBill(ctx context.Context, bill *models.Bill) (uuid.UUID, error) {
	args := m.Called(ctx, bill)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockBillRepository) GetBill(ctx context.Context, id uuid.UUID) (*models.Bill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bill), args.Error(1)
}

func (m *MockBillRepository) ListActiveBills(ctx context.Context) ([]*models.Bill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Bill), args.Error(1)
}

func (m *MockBillRepository) UpdateBill(ctx context.Context, bill *models.Bill, id uuid.UUID) (int, error) {
	args := m.Called(ctx, bill, id)
	return args.Int(0), args.Error(1)
}

func (m *MockBillRepository) SoftDeleteBill(ctx context.Context, id uuid.UUID) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *MockBillRepository) SetAutopay(ctx context.Context, id uuid.UUID, autopay bool) (int, error) {
	args := m.Called(ctx, id, autopay)
	return args.Int(0), args.Error(1)
}

func (m *MockBillRepository) UpdateNextDueDate(ctx context.Context, id uuid.UUID, next time.Time) (int, error) {
	args := m.Called(ctx, id, next)
	return args.Int(0), args.Error(1)
}

func (m *MockBillRepository) UpsertPayment(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	args := m.Called(ctx, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *MockBillRepository) GetPayment(ctx context.Context, billID uuid.UUID, year, month int) (*models.Payment, error) {
	args := m.Called(ctx, billID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

type MockAlertLog struct {
	mock.Mock
}

func (m *MockAlertLog) AppendAlert(ctx context.Context, billID uuid.UUID, alertType models.AlertType, message string) (bool, error) {
	args := m.Called(ctx, billID, alertType, message)
	return args.Bool(0), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) Set(key string, value any, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Invalidate(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func newTestBillService(repo *MockBillRepository, alerts *MockAlertLog, cache *MockCache) *BillService {
	log := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return NewBillService(repo, alerts, cache, log)
}

func validRequest() *models.DummyBill {
	return &models.DummyBill{
		Name:      "Electric",
		Amount:    decimal.NewFromFloat(85.50),
		Frequency: "monthly",
		DueDay:    22,
		Category:  "utilities",
	}
}

func TestCreate(t *testing.T) {
	mockRepo := new(MockBillRepository)
	mockAlerts := new(MockAlertLog)
	mockCache := new(MockCache)

	id := uuid.New()
	mockRepo.On("CreateBill", mock.Anything, mock.Anything).Return(id, nil)
	mockAlerts.On("AppendAlert", mock.Anything, id, models.AlertBillAdded,
		"📝 Bill added: Electric ($85.50)").Return(true, nil)
	mockCache.On("Invalidate", mock.Anything).Return(nil)

	svc := newTestBillService(mockRepo, mockAlerts, mockCache)

	bill, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, id, bill.ID)
	assert.True(t, bill.ReminderEnabled)
	assert.Equal(t, 3, bill.ReminderDaysBefore)
	assert.True(t, bill.Active)
	mockAlerts.AssertExpectations(t)
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.DummyBill)
		wantErr error
	}{
		{
			name:    "zero amount",
			mutate:  func(r *models.DummyBill) { r.Amount = decimal.Zero },
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			mutate:  func(r *models.DummyBill) { r.Amount = decimal.NewFromInt(-5) },
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "unknown frequency",
			mutate:  func(r *models.DummyBill) { r.Frequency = "biweekly" },
			wantErr: ErrInvalidFrequency,
		},
		{
			name:    "no anchor",
			mutate:  func(r *models.DummyBill) { r.DueDay = 0 },
			wantErr: ErrInvalidAnchor,
		},
		{
			name: "both anchors",
			mutate: func(r *models.DummyBill) {
				r.NextDueDate = "2026-04-03"
			},
			wantErr: ErrInvalidAnchor,
		},
	}

	svc := newTestBillService(new(MockBillRepository), new(MockAlertLog), new(MockCache))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateDateAnchored(t *testing.T) {
	mockRepo := new(MockBillRepository)
	mockAlerts := new(MockAlertLog)
	mockCache := new(MockCache)

	id := uuid.New()
	mockRepo.On("CreateBill", mock.Anything, mock.MatchedBy(func(b *models.Bill) bool {
		return b.DateAnchored() && b.NextDueDate.Equal(time.Date(2026, time.April, 3, 0, 0, 0, 0, time.UTC))
	})).Return(id, nil)
	mockAlerts.On("AppendAlert", mock.Anything, id, models.AlertBillAdded, mock.Anything).Return(true, nil)
	mockCache.On("Invalidate", mock.Anything).Return(nil)

	svc := newTestBillService(mockRepo, mockAlerts, mockCache)

	req := validRequest()
	req.DueDay = 0
	req.NextDueDate = "2026-04-03"

	bill, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, bill.DateAnchored())
}

func TestRemoveLogsDeletion(t *testing.T) {
	mockRepo := new(MockBillRepository)
	mockAlerts := new(MockAlertLog)
	mockCache := new(MockCache)

	id := uuid.New()
	mockRepo.On("GetBill", mock.Anything, id).
		Return(&models.Bill{ID: id, Name: "Electric", Active: true}, nil)
	mockRepo.On("SoftDeleteBill", mock.Anything, id).Return(1, nil)
	mockAlerts.On("AppendAlert", mock.Anything, id, models.AlertBillDeleted,
		"🗑️ Bill deleted: Electric").Return(true, nil)
	mockCache.On("Invalidate", mock.Anything).Return(nil)

	svc := newTestBillService(mockRepo, mockAlerts, mockCache)

	err := svc.Remove(context.Background(), id)
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockAlerts.AssertExpectations(t)
}

func TestMarkPaidDefaultsToCurrentMonth(t *testing.T) {
	mockRepo := new(MockBillRepository)
	mockAlerts := new(MockAlertLog)
	mockCache := new(MockCache)

	id := uuid.New()
	bill := &models.Bill{
		ID:        id,
		Name:      "Electric",
		Amount:    decimal.NewFromFloat(85.50),
		Frequency: models.FrequencyMonthly,
		DueDay:    22,
		Active:    true,
	}
	mockRepo.On("GetBill", mock.Anything, id).Return(bill, nil)
	mockRepo.On("UpsertPayment", mock.Anything, mock.MatchedBy(func(p *models.Payment) bool {
		return p.Year == 2026 && p.Month == 3 &&
			p.Method == models.PaymentMethodManual &&
			p.Amount.Equal(decimal.NewFromFloat(85.50))
	})).Return(&models.Payment{ID: 1, BillID: id, Year: 2026, Month: 3}, nil)
	mockAlerts.On("AppendAlert", mock.Anything, id, models.AlertPaymentRecorded, mock.Anything).Return(true, nil)
	mockCache.On("Invalidate", mock.Anything).Return(nil)

	svc := newTestBillService(mockRepo, mockAlerts, mockCache)
	svc.now = func() time.Time { return time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC) }

	payment, err := svc.MarkPaid(context.Background(), id, &models.DummyPayment{})
	require.NoError(t, err)

	assert.Equal(t, int64(1), payment.ID)
	mockRepo.AssertNotCalled(t, "UpdateNextDueDate", mock.Anything, mock.Anything, mock.Anything)
}

func TestMarkPaidAdvancesDateAnchoredBill(t *testing.T) {
	mockRepo := new(MockBillRepository)
	mockAlerts := new(MockAlertLog)
	mockCache := new(MockCache)

	id := uuid.New()
	nextDue := time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)
	bill := &models.Bill{
		ID:          id,
		Name:        "Insurance",
		Amount:      decimal.NewFromFloat(120.00),
		Frequency:   models.FrequencyMonthly,
		NextDueDate: &nextDue,
		Autopay:     true,
		Active:      true,
	}
	mockRepo.On("GetBill", mock.Anything, id).Return(bill, nil)
	mockRepo.On("UpsertPayment", mock.Anything, mock.MatchedBy(func(p *models.Payment) bool {
		return p.Year == 2026 && p.Month == 1 && p.Method == models.PaymentMethodAutopay
	})).Return(&models.Payment{ID: 7, BillID: id, Year: 2026, Month: 1}, nil)
	mockRepo.On("UpdateNextDueDate", mock.Anything, id,
		time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC)).Return(1, nil)
	mockAlerts.On("AppendAlert", mock.Anything, id, models.AlertPaymentRecorded, mock.Anything).Return(true, nil)
	mockCache.On("Invalidate", mock.Anything).Return(nil)

	svc := newTestBillService(mockRepo, mockAlerts, mockCache)
	svc.now = func() time.Time { return time.Date(2026, time.January, 31, 9, 0, 0, 0, time.UTC) }

	_, err := svc.MarkPaid(context.Background(), id, nil)
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestMarkPaidRejectsNonPositiveOverride(t *testing.T) {
	mockRepo := new(MockBillRepository)
	id := uuid.New()
	mockRepo.On("GetBill", mock.Anything, id).
		Return(&models.Bill{ID: id, Name: "Electric", Amount: decimal.NewFromInt(50), DueDay: 10, Active: true}, nil)

	svc := newTestBillService(mockRepo, new(MockAlertLog), new(MockCache))

	zero := decimal.Zero
	_, err := svc.MarkPaid(context.Background(), id, &models.DummyPayment{Amount: &zero})
	assert.ErrorIs(t, err, ErrInvalidAmount)
}
