package read

import (
	"context"
	"errors"
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

// MockService реализует интерфейс read.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Read(ctx context.Context, id uuid.UUID) (*models.Bill, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*models.Bill), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestReadHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	billID := uuid.New()
	missingID := uuid.New()

	tests := []struct {
		name           string
		urlID          string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "успешное чтение счета",
			urlID: billID.String(),
			setupMock: func(m *MockService) {
				bill := &models.Bill{
					ID:        billID,
					Name:      "Electric",
					Amount:    decimal.NewFromFloat(85.50),
					Frequency: models.FrequencyMonthly,
					DueDay:    22,
					Active:    true,
				}
				m.On("Read", mock.Anything, billID).Return(bill, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"Electric"`,
		},
		{
			name:           "некорректный id в URL",
			urlID:          "abc",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode id from url"}`,
		},
		{
			name:  "счет не найден",
			urlID: missingID.String(),
			setupMock: func(m *MockService) {
				m.On("Read", mock.Anything, missingID).Return(nil, repository.ErrBillNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"bill not found"}`,
		},
		{
			name:  "ошибка сервиса чтения",
			urlID: billID.String(),
			setupMock: func(m *MockService) {
				m.On("Read", mock.Anything, billID).Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not read bill"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/bills/"+tt.urlID, nil)
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
