// Package ack реализует HTTP-обработчик отметки уведомления прочитанным.
package ack

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/bills-tracker/internal/http/response"
	"github.com/magabrotheeeer/bills-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/bills-tracker/internal/storage/repository"
)

// Handler управляет HTTP-запросами на отметку уведомлений прочитанными.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис журнала уведомлений
}

// Service описывает интерфейс отметки уведомления прочитанным.
type Service interface {
	Acknowledge(ctx context.Context, id int64) error
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Отметить уведомление прочитанным
// @Description Помечает запись журнала прочитанной. Единственная разрешенная мутация журнала.
// @Tags Alerts
// @Produce  json
// @Param id path int true "ID записи журнала"
// @Success 200 {object} map[string]any "Запись помечена"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Запись не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /alerts/{id}/ack [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.alert.ack"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

	err = h.service.Acknowledge(r.Context(), id)
	if errors.Is(err, repository.ErrAlertNotFound) {
		log.Error("alert not found", slog.Int64("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("alert not found"))
		return
	}
	if err != nil {
		log.Error("failed to acknowledge alert", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not acknowledge alert"))
		return
	}

	log.Info("success to acknowledge alert", slog.Int64("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"acknowledged_id": id,
	}))
}
