// Package list реализует HTTP-обработчик для получения списка активных счетов.
package list

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

// Handler обрабатывает запросы на получение всех активных счетов.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики для получения счетов
}

// Service описывает интерфейс бизнес-логики чтения списка счетов.
type Service interface {
	List(ctx context.Context) ([]*models.Bill, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Получить список счетов
// @Description Возвращает все активные шаблоны счетов.
// @Tags Bills
// @Produce  json
// @Success 200 {object} map[string]any "Список счетов"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при чтении счетов"
// @Router /bills [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.bill.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	bills, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list bills", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list bills"))
		return
	}

	log.Info("success to list bills", slog.Int("count", len(bills)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"bills": bills,
		"count": len(bills),
	}))
}
