package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthHandler handles GET /health, the liveness probe.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// HealthDependenciesHandler handles GET /health/ready. Only the backends
// actually configured are checked; a nil client is reported as disabled.
type HealthDependenciesHandler struct {
	mongo   *mongo.Database
	redis   *redis.Client
	storage string
}

func NewHealthDependenciesHandler(db *mongo.Database, rdb *redis.Client, storage string) *HealthDependenciesHandler {
	return &HealthDependenciesHandler{
		mongo:   db,
		redis:   rdb,
		storage: storage,
	}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Storage      string                      `json:"storage"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *HealthDependenciesHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	deps := make(map[string]dependencyStatus)
	healthy := true

	check := func(name string, enabled bool, ping func() error) {
		if !enabled {
			deps[name] = dependencyStatus{Status: "disabled"}
			return
		}
		if err := ping(); err != nil {
			deps[name] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
			healthy = false
			return
		}
		deps[name] = dependencyStatus{Status: "ok"}
	}

	check("mongodb", h.mongo != nil, func() error {
		return h.mongo.Client().Ping(ctx, nil)
	})
	check("redis", h.redis != nil, func() error {
		return h.redis.Ping(ctx).Err()
	})

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Storage:      h.storage,
		Dependencies: deps,
	})
}
