package health

import (
	"context"
	"encore/infras/mongo"
	"encore/infras/otel"
	"encore/infras/postgres"
	"encore/shared/constant"
	"encore/transport/http/response"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	checkTimeout = 2 * time.Second

	statusOK        = "ok"
	statusUnhealthy = "unhealthy"
)

// Check is one dependency probed by /health.
type Check struct {
	Name string
	Ping func(ctx context.Context) error
}

type Report struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type Handler struct {
	checks []Check
	otel   otel.Otel
}

func New(mongo *mongo.Connection, postgres *postgres.Connection, redis *goRedis.Client, otel otel.Otel) Handler {
	return NewWithChecks(otel,
		Check{Name: "mongo", Ping: mongo.Ping},
		Check{Name: "postgres", Ping: postgres.Ping},
		Check{Name: "redis", Ping: func(ctx context.Context) error { return redis.Ping(ctx).Err() }},
	)
}

func NewWithChecks(otel otel.Otel, checks ...Check) Handler {
	return Handler{checks: checks, otel: otel}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

// Health pings every dependency.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Data[Report] "All dependencies reachable"
// @Failure 503 {object} response.Data[Report] "At least one dependency is down"
// @Router /health [get]
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Health")
	defer scope.End()

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	report := Report{Status: statusOK, Checks: make(map[string]string, len(handler.checks))}

	for _, check := range handler.checks {
		if err := check.Ping(ctx); err != nil {
			log.Error().Err(err).Str("dependency", check.Name).Msg("health check failed")

			report.Status = statusUnhealthy
			report.Checks[check.Name] = err.Error()

			continue
		}

		report.Checks[check.Name] = statusOK
	}

	if report.Status != statusOK {
		response.WithJSON(w, http.StatusServiceUnavailable, report)

		return
	}

	response.WithJSON(w, http.StatusOK, report)
}
