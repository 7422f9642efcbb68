// Package list реализует HTTP-обработчик просмотра журнала уведомлений.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/bills-tracker/internal/http/response"
	"github.com/magabrotheeeer/bills-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/bills-tracker/internal/models"
)

// Handler обрабатывает запросы на просмотр журнала уведомлений.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис журнала уведомлений
}

// Service описывает интерфейс чтения журнала уведомлений.
type Service interface {
	List(ctx context.Context, limit int) ([]*models.Alert, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Журнал уведомлений
// @Description Возвращает последние записи журнала уведомлений.
// @Tags Alerts
// @Produce  json
// @Param limit query int false "Максимум записей (по умолчанию 50)"
// @Success 200 {object} map[string]any "Записи журнала"
// @Failure 400 {object} response.ErrorResponse "Некорректный limit"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при чтении журнала"
// @Router /alerts [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.alert.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var limit int
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("limit must be a positive number"))
			return
		}
		limit = parsed
	}

	alerts, err := h.service.List(r.Context(), limit)
	if err != nil {
		log.Error("failed to list alerts", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list alerts"))
		return
	}

	log.Info("success to list alerts", slog.Int("count", len(alerts)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"alerts": alerts,
		"count":  len(alerts),
	}))
}
