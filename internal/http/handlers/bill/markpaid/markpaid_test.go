package markpaid

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/bills-tracker/internal/models"
	"github.com/magabrotheeeer/bills-tracker/internal/storage/repository"
)

// MockService реализует интерфейс markpaid.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) MarkPaid(ctx context.Context, id uuid.UUID, req *models.DummyPayment) (*models.Payment, error) {
	args := m.Called(ctx, id, req)
	if res := args.Get(0); res != nil {
		return res.(*models.Payment), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestMarkPaidHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	billID := uuid.New()
	missingID := uuid.New()

	tests := []struct {
		name           string
		urlID          string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "оплата с явным периодом",
			urlID: billID.String(),
			body:  `{"year":2026,"month":3}`,
			setupMock: func(m *MockService) {
				payment := &models.Payment{
					ID:     1,
					BillID: billID,
					Year:   2026,
					Month:  3,
					Amount: decimal.NewFromFloat(85.50),
					Method: models.PaymentMethodManual,
				}
				m.On("MarkPaid", mock.Anything, billID,
					&models.DummyPayment{Year: 2026, Month: 3}).Return(payment, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"year":2026`,
		},
		{
			name:  "оплата без тела запроса",
			urlID: billID.String(),
			body:  "",
			setupMock: func(m *MockService) {
				payment := &models.Payment{ID: 2, BillID: billID, Year: 2026, Month: 8}
				m.On("MarkPaid", mock.Anything, billID, &models.DummyPayment{}).Return(payment, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"payment"`,
		},
		{
			name:           "некорректный месяц",
			urlID:          billID.String(),
			body:           `{"year":2026,"month":13}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Month is above the allowed maximum`,
		},
		{
			name:  "счет не найден",
			urlID: missingID.String(),
			body:  `{}`,
			setupMock: func(m *MockService) {
				m.On("MarkPaid", mock.Anything, missingID, mock.Anything).
					Return(nil, repository.ErrBillNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"bill not found"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/bills/"+tt.urlID+"/pay", strings.NewReader(tt.body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.urlID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
