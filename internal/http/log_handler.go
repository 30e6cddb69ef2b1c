package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fleetflow/internal/service"
)

func (h *Handler) listFuelLogs(c *gin.Context) {
	vehicleID, ok := queryID(c, "vehicleId")
	if !ok {
		return
	}
	logs, err := h.fuelLogService.List(c.Request.Context(), vehicleID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (h *Handler) getFuelLog(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	log, err := h.fuelLogService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, log)
}

func (h *Handler) createFuelLog(c *gin.Context) {
	var req struct {
		VehicleID      string     `json:"vehicleId"`
		Liters         *float64   `json:"liters"`
		Cost           *float64   `json:"cost"`
		Date           *time.Time `json:"date"`
		OdometerAtFill *float64   `json:"odometerAtFill"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	if req.VehicleID == "" || req.Liters == nil || req.Cost == nil {
		c.JSON(http.StatusBadRequest, errorResponse("vehicleId, liters, and cost are required."))
		return
	}
	vehicleID, err := uuid.Parse(req.VehicleID)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid vehicleId."))
		return
	}

	log, err := h.fuelLogService.Create(c.Request.Context(), service.CreateFuelLogInput{
		VehicleID:      vehicleID,
		Liters:         *req.Liters,
		Cost:           *req.Cost,
		Date:           req.Date,
		OdometerAtFill: req.OdometerAtFill,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, log)
}

func (h *Handler) updateFuelLog(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req struct {
		Liters         *float64   `json:"liters"`
		Cost           *float64   `json:"cost"`
		Date           *time.Time `json:"date"`
		OdometerAtFill *float64   `json:"odometerAtFill"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	log, err := h.fuelLogService.Update(c.Request.Context(), id, service.UpdateFuelLogInput{
		Liters:         req.Liters,
		Cost:           req.Cost,
		Date:           req.Date,
		OdometerAtFill: req.OdometerAtFill,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, log)
}

func (h *Handler) deleteFuelLog(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.fuelLogService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Fuel log deleted."})
}

func (h *Handler) listServiceLogs(c *gin.Context) {
	vehicleID, ok := queryID(c, "vehicleId")
	if !ok {
		return
	}
	logs, err := h.serviceLogService.List(c.Request.Context(), vehicleID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (h *Handler) getServiceLog(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	log, err := h.serviceLogService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, log)
}

func (h *Handler) createServiceLog(c *gin.Context) {
	var req struct {
		VehicleID   string     `json:"vehicleId"`
		ServiceType string     `json:"serviceType"`
		Cost        *float64   `json:"cost"`
		Date        *time.Time `json:"date"`
		Notes       string     `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	if req.VehicleID == "" || req.ServiceType == "" || req.Cost == nil {
		c.JSON(http.StatusBadRequest, errorResponse("vehicleId, serviceType, and cost are required."))
		return
	}
	vehicleID, err := uuid.Parse(req.VehicleID)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid vehicleId."))
		return
	}

	log, err := h.serviceLogService.Create(c.Request.Context(), service.CreateServiceLogInput{
		VehicleID:   vehicleID,
		ServiceType: req.ServiceType,
		Cost:        *req.Cost,
		Date:        req.Date,
		Notes:       req.Notes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, log)
}

func (h *Handler) updateServiceLog(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req struct {
		ServiceType *string    `json:"serviceType"`
		Cost        *float64   `json:"cost"`
		Date        *time.Time `json:"date"`
		Notes       *string    `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	log, err := h.serviceLogService.Update(c.Request.Context(), id, service.UpdateServiceLogInput{
		ServiceType: req.ServiceType,
		Cost:        req.Cost,
		Date:        req.Date,
		Notes:       req.Notes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, log)
}

func (h *Handler) deleteServiceLog(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.serviceLogService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service log deleted."})
}
