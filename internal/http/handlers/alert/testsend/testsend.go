// Package testsend реализует HTTP-обработчик тестовой отправки уведомления.
//
// Используется для проверки канала доставки без привязки к счетам.
package testsend

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/bills-tracker/internal/http/response"
	"github.com/magabrotheeeer/bills-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/bills-tracker/internal/notifier"
)

// Handler управляет HTTP-запросами на тестовую отправку уведомления.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис журнала уведомлений
}

// Service описывает интерфейс тестовой отправки.
type Service interface {
	SendTest(ctx context.Context) error
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Отправить тестовое уведомление
// @Description Отправляет тестовое сообщение для проверки канала доставки и пишет его в журнал.
// @Tags Alerts
// @Produce  json
// @Success 200 {object} response.Response "Уведомление отправлено"
// @Failure 502 {object} response.ErrorResponse "Канал доставки недоступен или не настроен"
// @Router /alerts/test [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.alert.testsend"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := h.service.SendTest(r.Context()); err != nil {
		log.Error("failed to send test alert", sl.Err(err))
		status := http.StatusBadGateway
		if errors.Is(err, notifier.ErrNoAPIKey) {
			status = http.StatusServiceUnavailable
		}
		w.WriteHeader(status)
		render.JSON(w, r, response.Error("could not send test alert"))
		return
	}

	log.Info("test alert sent")
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message": "test alert sent",
	}))
}
