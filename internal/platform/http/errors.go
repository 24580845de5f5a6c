package http

import (
	"errors"
	"net/http"

	"github.com/fleetflow/fleetflow-api/internal/business/fleet"
	"github.com/fleetflow/fleetflow-api/internal/repository"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// writeError maps domain errors onto HTTP status codes.
func (r *Router) writeError(c *gin.Context, err error) {
	var classErr *fleet.ClassificationError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &classErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":     err.Error(),
			"vehicleId": classErr.VehicleID,
		})
	default:
		r.logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
