package http

import (
	"net/http"
	"time"

	"github.com/fleetflow/fleetflow-api/pkg/model"
	"github.com/gin-gonic/gin"
)

type driverReq struct {
	Name          string    `json:"name" binding:"required"`
	LicenseNumber string    `json:"licenseNumber" binding:"required"`
	LicenseExpiry time.Time `json:"licenseExpiry"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email" binding:"omitempty,email"`
	Status        string    `json:"status" binding:"omitempty,oneof=on_duty off_duty suspended"`
}

func (req driverReq) toModel() model.Driver {
	status := req.Status
	if status == "" {
		status = "off_duty"
	}
	return model.Driver{
		Name:          req.Name,
		LicenseNumber: req.LicenseNumber,
		LicenseExpiry: req.LicenseExpiry,
		Phone:         req.Phone,
		Email:         req.Email,
		Status:        status,
	}
}

func (r *Router) listDrivers(c *gin.Context) {
	items, err := r.drivers.List(c.Request.Context())
	if err != nil {
		r.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

func (r *Router) getDriver(c *gin.Context) {
	d, err := r.drivers.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		r.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (r *Router) createDriver(c *gin.Context) {
	var req driverReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body: "+err.Error())
		return
	}
	created, err := r.drivers.Create(c.Request.Context(), req.toModel())
	if err != nil {
		r.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (r *Router) updateDriver(c *gin.Context) {
	var req driverReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body: "+err.Error())
		return
	}
	updated, err := r.drivers.Update(c.Request.Context(), c.Param("id"), req.toModel())
	if err != nil {
		r.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (r *Router) deleteDriver(c *gin.Context) {
	if err := r.drivers.Delete(c.Request.Context(), c.Param("id")); err != nil {
		r.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
