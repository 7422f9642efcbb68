// Package summary реализует HTTP-обработчик агрегированной сводки за месяц.
package summary

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

// Handler обрабатывает запросы на получение сводки по счетам.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис расчета статусов
	now     func() time.Time
}

// Service описывает интерфейс расчета сводки за период.
type Service interface {
	Summary(ctx context.Context, year int, month time.Month) (*models.MonthSummary, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service, now: time.Now}
}

// ServeHTTP godoc
// @Summary Сводка по счетам за месяц
// @Description Возвращает количество и суммы счетов за период: оплаченные, неоплаченные, просроченные.
// @Tags Statuses
// @Produce  json
// @Param year query int false "Год периода"
// @Param month query int false "Месяц периода (1-12)"
// @Success 200 {object} map[string]any "Сводка за период"
// @Failure 400 {object} response.ErrorResponse "Некорректный период"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при расчете сводки"
// @Router /statuses/summary [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.status.summary"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	now := h.now()
	year, month := now.Year(), int(now.Month())
	if v := r.URL.Query().Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid year"))
			return
		}
		year = parsed
	}
	if v := r.URL.Query().Get("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 12 {
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid month"))
			return
		}
		month = parsed
	}

	summary, err := h.service.Summary(r.Context(), year, time.Month(month))
	if err != nil {
		log.Error("failed to build summary", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not build summary"))
		return
	}

	log.Info("success to build summary",
		slog.Int("year", year),
		slog.Int("month", month),
	)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"summary": summary,
	}))
}
