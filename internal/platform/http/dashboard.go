package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (r *Router) getFleetStatus(c *gin.Context) {
	report, err := r.dashboard.FleetStatus(c.Request.Context())
	if err != nil {
		r.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
