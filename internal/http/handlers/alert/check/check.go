// Package check реализует HTTP-обработчик ручного запуска проверки уведомлений.
//
// Один запуск обходит все активные счета, отправляет положенные уведомления
// и возвращает сводку. Повторный запуск в тот же день безвреден:
// дедупликация не даст отправить уведомление дважды.
package check

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/bills-tracker/internal/http/response"
	services "github.com/magabrotheeeer/bills-tracker/internal/services/alert"
)

// Handler управляет HTTP-запросами на запуск проверки уведомлений.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Диспетчер уведомлений
}

// Service описывает интерфейс диспетчера уведомлений.
type Service interface {
	Run(ctx context.Context) services.RunSummary
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Запустить проверку уведомлений
// @Description Обходит активные счета, отправляет положенные уведомления и возвращает сводку запуска.
// @Tags Alerts
// @Produce  json
// @Success 200 {object} map[string]any "Сводка запуска"
// @Router /alerts/check [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.alert.check"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	summary := h.service.Run(r.Context())

	log.Info("alert check finished",
		slog.Int("sent", summary.Sent),
		slog.Int("skipped", summary.Skipped),
		slog.Int("errors", len(summary.Errors)),
	)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"summary": summary,
		"message": services.FormatSummary(summary),
	}))
}
