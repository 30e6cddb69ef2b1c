package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fleetflow/internal/model"
	"fleetflow/internal/service"
)

func (h *Handler) listVehicles(c *gin.Context) {
	var opts service.ListVehiclesOptions
	if raw := strings.TrimSpace(c.Query("vehicleType")); raw != "" {
		t := model.VehicleType(raw)
		opts.VehicleType = &t
	}
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		st := model.VehicleStatus(raw)
		opts.Status = &st
	}
	opts.Region = strings.TrimSpace(c.Query("region"))

	vehicles, err := h.vehicleService.List(c.Request.Context(), opts)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

func (h *Handler) listAvailableVehicles(c *gin.Context) {
	vehicles, err := h.vehicleService.ListAvailable(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

func (h *Handler) getVehicle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	vehicle, err := h.vehicleService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

func (h *Handler) createVehicle(c *gin.Context) {
	var req struct {
		Name            string   `json:"name"`
		Model           string   `json:"model"`
		LicensePlate    string   `json:"licensePlate"`
		VehicleType     string   `json:"vehicleType"`
		MaxLoadCapacity *float64 `json:"maxLoadCapacity"`
		Odometer        float64  `json:"odometer"`
		Status          string   `json:"status"`
		Region          string   `json:"region"`
		AcquisitionCost float64  `json:"acquisitionCost"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	if req.Name == "" || req.LicensePlate == "" || req.VehicleType == "" || req.MaxLoadCapacity == nil {
		c.JSON(http.StatusBadRequest, errorResponse("name, licensePlate, vehicleType, and maxLoadCapacity are required."))
		return
	}

	vehicle, err := h.vehicleService.Create(c.Request.Context(), service.CreateVehicleInput{
		Name:            req.Name,
		Model:           req.Model,
		LicensePlate:    req.LicensePlate,
		VehicleType:     model.VehicleType(req.VehicleType),
		MaxLoadCapacity: *req.MaxLoadCapacity,
		Odometer:        req.Odometer,
		Status:          model.VehicleStatus(req.Status),
		Region:          req.Region,
		AcquisitionCost: req.AcquisitionCost,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vehicle)
}

func (h *Handler) updateVehicle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req struct {
		Name            *string  `json:"name"`
		Model           *string  `json:"model"`
		LicensePlate    *string  `json:"licensePlate"`
		VehicleType     *string  `json:"vehicleType"`
		MaxLoadCapacity *float64 `json:"maxLoadCapacity"`
		Odometer        *float64 `json:"odometer"`
		Status          *string  `json:"status"`
		Region          *string  `json:"region"`
		AcquisitionCost *float64 `json:"acquisitionCost"`
		OutOfService    *bool    `json:"outOfService"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	input := service.UpdateVehicleInput{
		Name:            req.Name,
		Model:           req.Model,
		LicensePlate:    req.LicensePlate,
		MaxLoadCapacity: req.MaxLoadCapacity,
		Odometer:        req.Odometer,
		Region:          req.Region,
		AcquisitionCost: req.AcquisitionCost,
		OutOfService:    req.OutOfService,
	}
	if req.VehicleType != nil {
		t := model.VehicleType(*req.VehicleType)
		input.VehicleType = &t
	}
	if req.Status != nil {
		st := model.VehicleStatus(*req.Status)
		input.Status = &st
	}

	vehicle, err := h.vehicleService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

func (h *Handler) deleteVehicle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.vehicleService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vehicle deleted."})
}
