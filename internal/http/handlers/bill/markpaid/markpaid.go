// Package markpaid реализует HTTP-обработчик отметки счета оплаченным.
//
// Тело запроса опционально: по умолчанию оплачивается текущий период
// на полную сумму счета. Операция идемпотентна.
package markpaid

import (
	"context"
	"encoding/json"
	"errors"
	"io"
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

// Handler управляет HTTP-запросами на отметку счета оплаченным.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики оплаты счетов
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики оплаты счета.
type Service interface {
	MarkPaid(ctx context.Context, id uuid.UUID, req *models.DummyPayment) (*models.Payment, error)
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
// @Summary Отметить счет оплаченным
// @Description Записывает оплату счета за период. Повторная отметка за тот же период безвредна.
// @Tags Bills
// @Accept  json
// @Produce  json
// @Param id path string true "ID счета"
// @Param request body models.DummyPayment false "Период и сумма оплаты"
// @Success 200 {object} map[string]any "Записанный платеж"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или данные оплаты"
// @Failure 404 {object} response.ErrorResponse "Счет не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при записи оплаты"
// @Router /bills/{id}/pay [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.bill.markpaid"
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

	var req models.DummyPayment
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
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

	payment, err := h.service.MarkPaid(r.Context(), id, &req)
	if errors.Is(err, repository.ErrBillNotFound) {
		log.Error("bill not found", slog.String("id", id.String()))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("bill not found"))
		return
	}
	if err != nil {
		log.Error("failed to mark bill paid", sl.Err(err))
		if errors.Is(err, billservice.ErrInvalidAmount) {
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not record payment"))
		return
	}

	log.Info("success to mark bill paid",
		slog.String("id", id.String()),
		slog.Int("year", payment.Year),
		slog.Int("month", payment.Month),
	)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"payment": payment,
	}))
}
