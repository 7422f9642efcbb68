// Package month реализует HTTP-обработчик для получения статусов счетов за месяц.
//
// Период задается query-параметрами year и month; по умолчанию текущий месяц.
// Статусы рассчитываются на лету и никогда не сохраняются.
package month

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/bills-tracker/internal/http/response"
	"github.com/magabrotheeeer/bills-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/bills-tracker/internal/models"
)

// Handler обрабатывает запросы на получение статусов счетов за месяц.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис расчета статусов
}

// Service описывает интерфейс расчета статусов за период.
type Service interface {
	MonthStatuses(ctx context.Context, year int, month time.Month) ([]*models.BillStatus, error)
	CurrentMonthStatuses(ctx context.Context) ([]*models.BillStatus, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Статусы счетов за месяц
// @Description Возвращает рассчитанные статусы всех активных счетов за период.
// @Tags Statuses
// @Produce  json
// @Param year query int false "Год периода"
// @Param month query int false "Месяц периода (1-12)"
// @Success 200 {object} map[string]any "Статусы счетов"
// @Failure 400 {object} response.ErrorResponse "Некорректный период"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при расчете статусов"
// @Router /statuses [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.status.month"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	yearStr, monthStr := r.URL.Query().Get("year"), r.URL.Query().Get("month")

	var (
		statuses []*models.BillStatus
		err      error
	)
	if yearStr == "" && monthStr == "" {
		statuses, err = h.service.CurrentMonthStatuses(r.Context())
	} else {
		year, yearErr := strconv.Atoi(yearStr)
		month, monthErr := strconv.Atoi(monthStr)
		if yearErr != nil || monthErr != nil || month < 1 || month > 12 {
			log.Error("invalid period in query")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("year and month query parameters must form a valid period"))
			return
		}
		statuses, err = h.service.MonthStatuses(r.Context(), year, time.Month(month))
	}
	if err != nil {
		log.Error("failed to resolve statuses", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not resolve statuses"))
		return
	}

	log.Info("success to resolve statuses", slog.Int("count", len(statuses)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"statuses": statuses,
		"count":    len(statuses),
	}))
}
