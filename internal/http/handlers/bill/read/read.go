// Package read реализует HTTP-обработчик для получения конкретного счета по ID.
//
// Handler извлекает ID из URL-параметров, вызывает бизнес-логику для чтения счета
// и возвращает данные счета в JSON-формате.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/bills-tracker/internal/http/response"
	"github.com/magabrotheeeer/bills-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/bills-tracker/internal/models"
	"github.com/magabrotheeeer/bills-tracker/internal/storage/repository"
)

// Handler обрабатывает запросы на получение счета по уникальному идентификатору.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики для получения счета по ID
}

// Service описывает интерфейс бизнес-логики чтения счета.
type Service interface {
	Read(ctx context.Context, id uuid.UUID) (*models.Bill, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Получить счет по ID
// @Description Возвращает шаблон счета по идентификатору.
// @Tags Bills
// @Produce  json
// @Param id path string true "ID счета"
// @Success 200 {object} map[string]any "Данные счета"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Счет не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при чтении счета"
// @Router /bills/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.bill.read"
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

	bill, err := h.service.Read(r.Context(), id)
	if errors.Is(err, repository.ErrBillNotFound) {
		log.Error("bill not found", slog.String("id", id.String()))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("bill not found"))
		return
	}
	if err != nil {
		log.Error("failed to read bill", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read bill"))
		return
	}

	log.Info("success to read bill", slog.String("id", id.String()))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"bill": bill,
	}))
}
