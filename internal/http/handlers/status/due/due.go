// Package due реализует HTTP-обработчик для получения счетов, требующих оплаты.
//
// По умолчанию возвращаются счета "скоро к оплате"; query-параметр
// mode=overdue переключает на просроченные.
package due

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/bills-tracker/internal/http/response"
	"github.com/magabrotheeeer/bills-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/bills-tracker/internal/models"
)

// Handler обрабатывает запросы на получение счетов к оплате.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис расчета статусов
}

// Service описывает интерфейс выборки счетов к оплате.
type Service interface {
	DueSoon(ctx context.Context) ([]*models.BillStatus, error)
	Overdue(ctx context.Context) ([]*models.BillStatus, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Счета, требующие оплаты
// @Description Возвращает неоплаченные счета без автосписания: скоро к оплате или просроченные.
// @Tags Statuses
// @Produce  json
// @Param mode query string false "Режим выборки: soon (по умолчанию) или overdue"
// @Success 200 {object} map[string]any "Счета к оплате"
// @Failure 400 {object} response.ErrorResponse "Некорректный режим"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при расчете статусов"
// @Router /statuses/due [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.status.due"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var (
		statuses []*models.BillStatus
		err      error
	)
	switch mode := r.URL.Query().Get("mode"); mode {
	case "", "soon":
		statuses, err = h.service.DueSoon(r.Context())
	case "overdue":
		statuses, err = h.service.Overdue(r.Context())
	default:
		log.Error("unknown mode in query", slog.String("mode", mode))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("mode must be soon or overdue"))
		return
	}
	if err != nil {
		log.Error("failed to resolve due bills", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not resolve due bills"))
		return
	}

	log.Info("success to resolve due bills", slog.Int("count", len(statuses)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"statuses": statuses,
		"count":    len(statuses),
	}))
}
