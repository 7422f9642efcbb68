// Package create реализует HTTP-обработчик для создания новых шаблонов счетов.
//
// Handler принимает JSON-запрос с данными счета, валидирует их,
// вызывает бизнес-логику создания счета через сервис и возвращает созданный счет в JSON-формате.
//
// В случае ошибок формируются соответствующие HTTP-ответы с описанием проблемы.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/bills-tracker/internal/http/response"
	"github.com/magabrotheeeer/bills-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/bills-tracker/internal/models"
	billservice "github.com/magabrotheeeer/bills-tracker/internal/services/bill"
)

// Handler управляет HTTP-запросами на создание новых счетов.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики для создания счетов
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики создания счета.
type Service interface {
	Create(ctx context.Context, req *models.DummyBill) (*models.Bill, error)
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
// @Summary Создать новый счет
// @Description Создает новый шаблон регулярного счета. Возвращает созданный счет.
// @Tags Bills
// @Accept  json
// @Produce  json
// @Param request body models.DummyBill true "Данные нового счета"
// @Success 200 {object} map[string]any "Успешное создание счета"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или данные счета"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при создании счета"
// @Router /bills [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.bill.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyBill
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	bill, err := h.service.Create(r.Context(), &req)
	if err != nil {
		log.Error("failed to create bill", sl.Err(err))
		if isValidation(err) {
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create bill"))
		return
	}

	log.Info("success to create bill", slog.Any("id", bill.ID))
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
