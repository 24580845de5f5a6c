package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/fleetflow/fleetflow-api/internal/repository"
	"github.com/fleetflow/fleetflow-api/pkg/model"
	"github.com/gin-gonic/gin"
)

type fuelLogReq struct {
	VehicleID string    `json:"vehicleId" binding:"required"`
	Date      time.Time `json:"date" binding:"required"`
	Liters    float64   `json:"liters" binding:"gt=0"`
	Cost      float64   `json:"cost" binding:"gte=0"`
	Odometer  float64   `json:"odometer" binding:"gte=0"`
	Station   string    `json:"station"`
}

// requireVehicle reports whether the referenced vehicle exists, writing a 400 if it does not.
func (r *Router) requireVehicle(c *gin.Context, id string) bool {
	if _, err := r.vehicles.Get(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			badRequest(c, "unknown vehicle "+id)
		} else {
			r.writeError(c, err)
		}
		return false
	}
	return true
}

func (r *Router) bindFuelLog(c *gin.Context) (model.FuelLog, bool) {
	var req fuelLogReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body: "+err.Error())
		return model.FuelLog{}, false
	}
	if !r.requireVehicle(c, req.VehicleID) {
		return model.FuelLog{}, false
	}
	return model.FuelLog{
		VehicleID: req.VehicleID,
		Date:      req.Date.UTC(),
		Liters:    req.Liters,
		Cost:      req.Cost,
		Odometer:  req.Odometer,
		Station:   req.Station,
	}, true
}

func (r *Router) listFuelLogs(c *gin.Context) {
	items, err := r.fuelLogs.List(c.Request.Context(), c.Query("vehicleId"))
	if err != nil {
		r.writeError(c, err)
		return
	}
	var liters, cost float64
	for _, l := range items {
		liters += l.Liters
		cost += l.Cost
	}
	c.JSON(http.StatusOK, gin.H{
		"items":       items,
		"total":       len(items),
		"totalLiters": liters,
		"totalCost":   cost,
	})
}

func (r *Router) getFuelLog(c *gin.Context) {
	l, err := r.fuelLogs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		r.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (r *Router) createFuelLog(c *gin.Context) {
	l, ok := r.bindFuelLog(c)
	if !ok {
		return
	}
	created, err := r.fuelLogs.Create(c.Request.Context(), l)
	if err != nil {
		r.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (r *Router) updateFuelLog(c *gin.Context) {
	l, ok := r.bindFuelLog(c)
	if !ok {
		return
	}
	updated, err := r.fuelLogs.Update(c.Request.Context(), c.Param("id"), l)
	if err != nil {
		r.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (r *Router) deleteFuelLog(c *gin.Context) {
	if err := r.fuelLogs.Delete(c.Request.Context(), c.Param("id")); err != nil {
		r.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
