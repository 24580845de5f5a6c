package http

import (
	"net/http"
	"time"

	"github.com/fleetflow/fleetflow-api/pkg/model"
	"github.com/gin-gonic/gin"
)

type maintenanceReq struct {
	VehicleID   string    `json:"vehicleId" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
	Type        string    `json:"type" binding:"required"`
	Description string    `json:"description"`
	Cost        float64   `json:"cost" binding:"gte=0"`
	Status      string    `json:"status" binding:"omitempty,oneof=scheduled in_progress completed"`
}

func (r *Router) bindMaintenance(c *gin.Context) (model.Maintenance, bool) {
	var req maintenanceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body: "+err.Error())
		return model.Maintenance{}, false
	}
	if !r.requireVehicle(c, req.VehicleID) {
		return model.Maintenance{}, false
	}
	status := req.Status
	if status == "" {
		status = "scheduled"
	}
	return model.Maintenance{
		VehicleID:   req.VehicleID,
		Date:        req.Date.UTC(),
		Type:        req.Type,
		Description: req.Description,
		Cost:        req.Cost,
		Status:      status,
	}, true
}

func (r *Router) listMaintenance(c *gin.Context) {
	items, err := r.maintenance.List(c.Request.Context(), c.Query("vehicleId"))
	if err != nil {
		r.writeError(c, err)
		return
	}
	var cost float64
	for _, m := range items {
		cost += m.Cost
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items), "totalCost": cost})
}

func (r *Router) getMaintenance(c *gin.Context) {
	m, err := r.maintenance.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		r.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (r *Router) createMaintenance(c *gin.Context) {
	m, ok := r.bindMaintenance(c)
	if !ok {
		return
	}
	created, err := r.maintenance.Create(c.Request.Context(), m)
	if err != nil {
		r.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (r *Router) updateMaintenance(c *gin.Context) {
	m, ok := r.bindMaintenance(c)
	if !ok {
		return
	}
	updated, err := r.maintenance.Update(c.Request.Context(), c.Param("id"), m)
	if err != nil {
		r.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (r *Router) deleteMaintenance(c *gin.Context) {
	if err := r.maintenance.Delete(c.Request.Context(), c.Param("id")); err != nil {
		r.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
