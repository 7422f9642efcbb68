package services

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/bills-tracker/internal/models"
)

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Send(ctx context.Context, message string) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func TestHandleDueAlert(t *testing.T) {
	mockNotifier := new(MockNotifier)
	mockNotifier.On("Send", mock.Anything, "⏰ DUE TODAY: Electric ($85.50) is due today. Don't forget to pay!").
		Return(nil)

	log := slog.New(slog.NewTextHandler(os.Stdout, nil))
	svc := NewSenderService(mockNotifier, log)

	body, err := json.Marshal(models.AlertMessage{
		BillID:   uuid.New(),
		BillName: "Electric",
		Type:     models.AlertDueToday,
		Message:  "⏰ DUE TODAY: Electric ($85.50) is due today. Don't forget to pay!",
	})
	require.NoError(t, err)

	err = svc.HandleDueAlert(context.Background(), body)
	assert.NoError(t, err)
	mockNotifier.AssertExpectations(t)
}

func TestHandleDueAlertInvalidPayload(t *testing.T) {
	log := slog.New(slog.NewTextHandler(os.Stdout, nil))
	svc := NewSenderService(new(MockNotifier), log)

	err := svc.HandleDueAlert(context.Background(), []byte("not json"))
	assert.Error(t, err)
}

func TestHandleDueAlertDeliveryFailure(t *testing.T) {
	mockNotifier := new(MockNotifier)
	mockNotifier.On("Send", mock.Anything, mock.Anything).Return(errors.New("webhook unreachable"))

	log := slog.New(slog.NewTextHandler(os.Stdout, nil))
	svc := NewSenderService(mockNotifier, log)

	body, err := json.Marshal(models.AlertMessage{BillName: "Electric", Type: models.AlertOverdue, Message: "x"})
	require.NoError(t, err)

	err = svc.HandleDueAlert(context.Background(), body)
	assert.Error(t, err)
}
