// Package update реализует HTTP-обработчик для обновления шаблона счета.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/bills-tracker/internal/http/response"
	"github.com/magabrotheeeer/bills-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/bills-tracker/internal/models"
	billservice "github.com/magabrotheeeer/bills-tracker/internal/services/bill"
	"github.com/magabrotheeeer/bills-tracker/internal/storage/repository"
)

// Handler управляет HTTP-запросами на обновление счетов.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики для обновления счетов
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики обновления счета.
type Service interface {
	Update(ctx context.Context, id uuid.UUID, req *models.DummyBill) (*models.Bill, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Обновить счет
// @Description Перезаписывает шаблон счета по идентификатору.
// @Tags Bills
// @Accept  json
// @Produce  json
// @Param id path string true "ID счета"
// @Param request body models.DummyBill true "Новые данные счета"
// @Success 200 {object} map[string]any "Обновленный счет"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или данные счета"
// @Failure 404 {object} response.ErrorResponse "Счет не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при обновлении счета"
// @Router /bills/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.bill.update"
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

	var req models.DummyBill
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	bill, err := h.service.Update(r.Context(), id, &req)
	if errors.Is(err, repository.ErrBillNotFound) {
		log.Error("bill not found", slog.String("id", id.String()))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("bill not found"))
		return
	}
	if err != nil {
		log.Error("failed to update bill", sl.Err(err))
		if isValidation(err) {
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update bill"))
		return
	}

	log.Info("success to update bill", slog.String("id", id.String()))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"bill": bill,
	}))
}

// isValidation сообщает, относится ли ошибка сервиса к ошибкам валидации данных счета.
func isValidation(err error) bool {
	return errors.Is(err, billservice.ErrInvalidAmount) ||
		errors.Is(err, billservice.ErrInvalidFrequency) ||
		errors.Is(err, billservice.ErrInvalidAnchor) ||
		errors.Is(err, billservice.ErrInvalidDueDate) ||
		errors.Is(err, billservice.ErrInvalidReminder)
}
