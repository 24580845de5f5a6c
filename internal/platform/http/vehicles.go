package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/fleetflow/fleetflow-api/internal/business/fleet"
	"github.com/fleetflow/fleetflow-api/internal/repository"
	"github.com/fleetflow/fleetflow-api/pkg/model"
	"github.com/gin-gonic/gin"
)

type vehicleReq struct {
	Name             string  `json:"name" binding:"required"`
	Make             string  `json:"make"`
	Model            string  `json:"model"`
	Year             int     `json:"year" binding:"omitempty,gte=1900,lte=2100"`
	LicensePlate     string  `json:"licensePlate" binding:"required"`
	Type             string  `json:"type"`
	Status           string  `json:"status" binding:"required"`
	Odometer         float64 `json:"odometer" binding:"gte=0"`
	AssignedDriverID string  `json:"assignedDriverId"`
}

func statusChoices() string {
	all := model.AllVehicleStatuses()
	names := make([]string, 0, len(all))
	for _, s := range all {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}

// bindVehicle decodes and validates a vehicle body. It writes the response and returns false on failure.
func (r *Router) bindVehicle(c *gin.Context) (model.Vehicle, bool) {
	var req vehicleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body: "+err.Error())
		return model.Vehicle{}, false
	}
	status, ok := fleet.ParseStatus(req.Status)
	if !ok {
		badRequest(c, fmt.Sprintf("status must be one of %s", statusChoices()))
		return model.Vehicle{}, false
	}
	if req.AssignedDriverID != "" {
		if _, err := r.drivers.Get(c.Request.Context(), req.AssignedDriverID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				badRequest(c, "unknown driver "+req.AssignedDriverID)
			} else {
				r.writeError(c, err)
			}
			return model.Vehicle{}, false
		}
	}
	return model.Vehicle{
		Name:             req.Name,
		Make:             req.Make,
		Model:            req.Model,
		Year:             req.Year,
		LicensePlate:     req.LicensePlate,
		Type:             req.Type,
		Status:           status,
		Odometer:         req.Odometer,
		AssignedDriverID: req.AssignedDriverID,
	}, true
}

func (r *Router) listVehicles(c *gin.Context) {
	items, err := r.vehicles.List(c.Request.Context())
	if err != nil {
		r.writeError(c, err)
		return
	}
	if status := c.Query("status"); status != "" {
		filtered := make([]model.Vehicle, 0, len(items))
		for _, v := range items {
			if string(v.Status) == status {
				filtered = append(filtered, v)
			}
		}
		items = filtered
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

func (r *Router) getVehicle(c *gin.Context) {
	v, err := r.vehicles.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		r.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (r *Router) createVehicle(c *gin.Context) {
	v, ok := r.bindVehicle(c)
	if !ok {
		return
	}
	created, err := r.vehicles.Create(c.Request.Context(), v)
	if err != nil {
		r.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (r *Router) updateVehicle(c *gin.Context) {
	v, ok := r.bindVehicle(c)
	if !ok {
		return
	}
	updated, err := r.vehicles.Update(c.Request.Context(), c.Param("id"), v)
	if err != nil {
		r.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (r *Router) deleteVehicle(c *gin.Context) {
	if err := r.vehicles.Delete(c.Request.Context(), c.Param("id")); err != nil {
		r.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
