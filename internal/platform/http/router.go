package http

import (
	"context"
	"crypto/subtle"
	"net/http"
	"slices"
	"strings"

	"github.com/fleetflow/fleetflow-api/internal/business/fleet"
	"github.com/fleetflow/fleetflow-api/pkg/model"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// VehicleStore persists vehicles.
type VehicleStore interface {
	List(ctx context.Context) ([]model.Vehicle, error)
	Get(ctx context.Context, id string) (model.Vehicle, error)
	Create(ctx context.Context, v model.Vehicle) (model.Vehicle, error)
	Update(ctx context.Context, id string, v model.Vehicle) (model.Vehicle, error)
	Delete(ctx context.Context, id string) error
}

// DriverStore persists drivers.
type DriverStore interface {
	List(ctx context.Context) ([]model.Driver, error)
	Get(ctx context.Context, id string) (model.Driver, error)
	Create(ctx context.Context, d model.Driver) (model.Driver, error)
	Update(ctx context.Context, id string, d model.Driver) (model.Driver, error)
	Delete(ctx context.Context, id string) error
}

// FuelLogStore persists fuel logs.
type FuelLogStore interface {
	List(ctx context.Context, vehicleID string) ([]model.FuelLog, error)
	Get(ctx context.Context, id string) (model.FuelLog, error)
	Create(ctx context.Context, l model.FuelLog) (model.FuelLog, error)
	Update(ctx context.Context, id string, l model.FuelLog) (model.FuelLog, error)
	Delete(ctx context.Context, id string) error
}

// MaintenanceStore persists maintenance records.
type MaintenanceStore interface {
	List(ctx context.Context, vehicleID string) ([]model.Maintenance, error)
	Get(ctx context.Context, id string) (model.Maintenance, error)
	Create(ctx context.Context, m model.Maintenance) (model.Maintenance, error)
	Update(ctx context.Context, id string, m model.Maintenance) (model.Maintenance, error)
	Delete(ctx context.Context, id string) error
}

// FleetStatusProvider computes the dashboard fleet status.
type FleetStatusProvider interface {
	FleetStatus(ctx context.Context) (fleet.StatusReport, error)
}

// Deps are the collaborators the router dispatches to.
type Deps struct {
	Vehicles       VehicleStore
	Drivers        DriverStore
	FuelLogs       FuelLogStore
	Maintenance    MaintenanceStore
	Dashboard      FleetStatusProvider
	Gatherer       prometheus.Gatherer
	Logger         *zap.Logger
	AllowedOrigins string
	APIToken       string
}

// Router wires HTTP handlers.
type Router struct {
	vehicles    VehicleStore
	drivers     DriverStore
	fuelLogs    FuelLogStore
	maintenance MaintenanceStore
	dashboard   FleetStatusProvider
	logger      *zap.Logger
	origins     string
	token       string
}

func NewRouter(deps Deps) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Router{
		vehicles:    deps.Vehicles,
		drivers:     deps.Drivers,
		fuelLogs:    deps.FuelLogs,
		maintenance: deps.Maintenance,
		dashboard:   deps.Dashboard,
		logger:      logger.Named("http"),
		origins:     deps.AllowedOrigins,
		token:       deps.APIToken,
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), r.corsMiddleware())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	api := router.Group("/api", r.authMiddleware())
	{
		api.GET("/vehicles", r.listVehicles)
		api.POST("/vehicles", r.createVehicle)
		api.GET("/vehicles/:id", r.getVehicle)
		api.PUT("/vehicles/:id", r.updateVehicle)
		api.DELETE("/vehicles/:id", r.deleteVehicle)

		api.GET("/drivers", r.listDrivers)
		api.POST("/drivers", r.createDriver)
		api.GET("/drivers/:id", r.getDriver)
		api.PUT("/drivers/:id", r.updateDriver)
		api.DELETE("/drivers/:id", r.deleteDriver)

		api.GET("/fuel-logs", r.listFuelLogs)
		api.POST("/fuel-logs", r.createFuelLog)
		api.GET("/fuel-logs/:id", r.getFuelLog)
		api.PUT("/fuel-logs/:id", r.updateFuelLog)
		api.DELETE("/fuel-logs/:id", r.deleteFuelLog)

		api.GET("/maintenance", r.listMaintenance)
		api.POST("/maintenance", r.createMaintenance)
		api.GET("/maintenance/:id", r.getMaintenance)
		api.PUT("/maintenance/:id", r.updateMaintenance)
		api.DELETE("/maintenance/:id", r.deleteMaintenance)

		api.GET("/dashboard/fleet-status", r.getFleetStatus)
	}

	return router
}

// corsMiddleware allows any origin when ALLOWED_ORIGINS is empty or contains "*".
// Otherwise only listed origins get an Access-Control-Allow-Origin header.
func (r *Router) corsMiddleware() gin.HandlerFunc {
	origins := strings.Split(r.origins, ",")
	trimmed := make([]string, 0, len(origins))
	for _, o := range origins {
		if t := strings.TrimSpace(o); t != "" {
			trimmed = append(trimmed, t)
		}
	}
	wildcard := len(trimmed) == 0
	for _, o := range trimmed {
		if o == "*" {
			wildcard = true
		}
	}
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		switch {
		case wildcard:
			c.Header("Access-Control-Allow-Origin", "*")
		case origin != "" && slices.Contains(trimmed, origin):
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
		}
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			c.Abort()
			return
		}
		c.Next()
	}
}

// authMiddleware requires "Authorization: Bearer <token>" when an API token is configured.
func (r *Router) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if r.token == "" {
			c.Next()
			return
		}
		got, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(got), []byte(r.token)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}
