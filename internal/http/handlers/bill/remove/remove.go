// Package remove реализует HTTP-обработчик для удаления счета.
//
// Удаление мягкое: счет помечается неактивным, история платежей
// и журнал уведомлений сохраняются.
package remove

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
	"github.com/magabrotheeeer/bills-tracker/internal/storage/repository"
)

// Handler управляет HTTP-запросами на удаление счетов.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики для удаления счетов
}

// Service описывает интерфейс бизнес-логики удаления счета.
type Service interface {
	Remove(ctx context.Context, id uuid.UUID) error
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Удалить счет
// @Description Мягко удаляет шаблон счета. История платежей сохраняется.
// @Tags Bills
// @Produce  json
// @Param id path string true "ID счета"
// @Success 200 {object} response.Response "Счет удален"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Счет не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при удалении счета"
// @Router /bills/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.bill.remove"
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

	err = h.service.Remove(r.Context(), id)
	if errors.Is(err, repository.ErrBillNotFound) {
		log.Error("bill not found", slog.String("id", id.String()))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("bill not found"))
		return
	}
	if err != nil {
		log.Error("failed to remove bill", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not remove bill"))
		return
	}

	log.Info("success to remove bill", slog.String("id", id.String()))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"deleted_id": id,
	}))
}
