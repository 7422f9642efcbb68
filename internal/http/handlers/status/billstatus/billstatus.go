// Package billstatus реализует HTTP-обработчик расчета статуса одного счета.
package billstatus

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/bills-tracker/internal/http/response"
	"github.com/magabrotheeeer/bills-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/bills-tracker/internal/models"
	"github.com/magabrotheeeer/bills-tracker/internal/storage/repository"
)

// Handler обрабатывает запросы на расчет статуса счета за период.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис расчета статусов
	now     func() time.Time
}

// Service описывает интерфейс расчета статуса одного счета.
type Service interface {
	ResolveBill(ctx context.Context, id uuid.UUID, year int, month time.Month) (*models.BillStatus, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service, now: time.Now}
}

// ServeHTTP godoc
// @Summary Статус счета за период
// @Description Рассчитывает статус одного счета за период; по умолчанию текущий месяц.
// @Tags Statuses
// @Produce  json
// @Param id path string true "ID счета"
// @Param year query int false "Год периода"
// @Param month query int false "Месяц периода (1-12)"
// @Success 200 {object} map[string]any "Статус счета"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID или период"
// @Failure 404 {object} response.ErrorResponse "Счет не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при расчете статуса"
// @Router /bills/{id}/status [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.status.billstatus"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

	now := h.now()
	year, month := now.Year(), int(now.Month())
	if v := r.URL.Query().Get("year"); v != "" {
		parsed, parseErr := strconv.Atoi(v)
		if parseErr != nil {
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid year"))
			return
		}
		year = parsed
	}
	if v := r.URL.Query().Get("month"); v != "" {
		parsed, parseErr := strconv.Atoi(v)
		if parseErr != nil || parsed < 1 || parsed > 12 {
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid month"))
			return
		}
		month = parsed
	}

	status, err := h.service.ResolveBill(r.Context(), id, year, time.Month(month))
	if errors.Is(err, repository.ErrBillNotFound) {
		log.Error("bill not found", slog.String("id", id.String()))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("bill not found"))
		return
	}
	if err != nil {
		log.Error("failed to resolve bill status", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not resolve bill status"))
		return
	}

	log.Info("success to resolve bill status", slog.String("id", id.String()))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"status": status,
	}))
}
