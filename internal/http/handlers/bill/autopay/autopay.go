// Package autopay реализует HTTP-обработчик переключения автосписания.
package autopay

import (
	"context"
	"encoding/json"
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

// Handler управляет HTTP-запросами на переключение автосписания.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики счета
}

// Service описывает интерфейс бизнес-логики переключения автосписания.
type Service interface {
	ToggleAutopay(ctx context.Context, id uuid.UUID, autopay bool) error
}

// Request — тело запроса на переключение автосписания.
type Request struct {
	Autopay bool `json:"autopay"`
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Переключить автосписание
// @Description Включает или выключает автосписание для счета.
// @Tags Bills
// @Accept  json
// @Produce  json
// @Param id path string true "ID счета"
// @Param request body Request true "Новое значение флага"
// @Success 200 {object} map[string]any "Флаг обновлен"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или ID"
// @Failure 404 {object} response.ErrorResponse "Счет не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /bills/{id}/autopay [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.bill.autopay"
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

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	err = h.service.ToggleAutopay(r.Context(), id, req.Autopay)
	if errors.Is(err, repository.ErrBillNotFound) {
		log.Error("bill not found", slog.String("id", id.String()))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("bill not found"))
		return
	}
	if err != nil {
		log.Error("failed to toggle autopay", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not toggle autopay"))
		return
	}

	log.Info("success to toggle autopay",
		slog.String("id", id.String()),
		slog.Bool("autopay", req.Autopay),
	)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id":      id,
		"autopay": req.Autopay,
	}))
}
