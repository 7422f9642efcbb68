// Package billstracker предоставляет маршруты для основного приложения.
package billstracker

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	alertack "github.com/magabrotheeeer/bills-tracker/internal/http/handlers/alert/ack"
	alertcheck "github.com/magabrotheeeer/bills-tracker/internal/http/handlers/alert/check"
	alertlist "github.com/magabrotheeeer/bills-tracker/internal/http/handlers/alert/list"
	alerttest "github.com/magabrotheeeer/bills-tracker/internal/http/handlers/alert/testsend"
	"github.com/magabrotheeeer/bills-tracker/internal/http/handlers/bill/autopay"
	"github.com/magabrotheeeer/bills-tracker/internal/http/handlers/bill/create"
	billlist "github.com/magabrotheeeer/bills-tracker/internal/http/handlers/bill/list"
	"github.com/magabrotheeeer/bills-tracker/internal/http/handlers/bill/markpaid"
	"github.com/magabrotheeeer/bills-tracker/internal/http/handlers/bill/read"
	"github.com/magabrotheeeer/bills-tracker/internal/http/handlers/bill/remove"
	"github.com/magabrotheeeer/bills-tracker/internal/http/handlers/bill/update"
	"github.com/magabrotheeeer/bills-tracker/internal/http/handlers/health"
	"github.com/magabrotheeeer/bills-tracker/internal/http/handlers/status/billstatus"
	"github.com/magabrotheeeer/bills-tracker/internal/http/handlers/status/due"
	"github.com/magabrotheeeer/bills-tracker/internal/http/handlers/status/month"
	"github.com/magabrotheeeer/bills-tracker/internal/http/handlers/status/summary"
	"github.com/magabrotheeeer/bills-tracker/internal/http/middlewarectx"
	alertservice "github.com/magabrotheeeer/bills-tracker/internal/services/alert"
	billservice "github.com/magabrotheeeer/bills-tracker/internal/services/bill"
	statusservice "github.com/magabrotheeeer/bills-tracker/internal/services/status"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, billService *billservice.BillService, statusService *statusservice.StatusService, alertService *alertservice.AlertService, dispatcher *alertservice.DispatcherService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger))

		r.Post("/bills", create.New(logger, billService).ServeHTTP)
		r.Get("/bills", billlist.New(logger, billService).ServeHTTP)
		r.Get("/bills/{id}", read.New(logger, billService).ServeHTTP)
		r.Put("/bills/{id}", update.New(logger, billService).ServeHTTP)
		r.Delete("/bills/{id}", remove.New(logger, billService).ServeHTTP)
		r.Post("/bills/{id}/pay", markpaid.New(logger, billService).ServeHTTP)
		r.Put("/bills/{id}/autopay", autopay.New(logger, billService).ServeHTTP)
		r.Get("/bills/{id}/status", billstatus.New(logger, statusService).ServeHTTP)

		r.Get("/statuses", month.New(logger, statusService).ServeHTTP)
		r.Get("/statuses/due", due.New(logger, statusService).ServeHTTP)
		r.Get("/statuses/summary", summary.New(logger, statusService).ServeHTTP)

		r.Post("/alerts/check", alertcheck.New(logger, dispatcher).ServeHTTP)
		r.Get("/alerts", alertlist.New(logger, alertService).ServeHTTP)
		r.Put("/alerts/{id}/ack", alertack.New(logger, alertService).ServeHTTP)
		r.Post("/alerts/test", alerttest.New(logger, alertService).ServeHTTP)
	})

	r.Get("/health", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
