package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"fleetflow/internal/model"
	"fleetflow/internal/service"
)

func (h *Handler) listDrivers(c *gin.Context) {
	var status *model.DriverStatus
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		st := model.DriverStatus(raw)
		status = &st
	}
	drivers, err := h.driverService.List(c.Request.Context(), status)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, drivers)
}

func (h *Handler) listAvailableDrivers(c *gin.Context) {
	drivers, err := h.driverService.ListAvailable(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, drivers)
}

func (h *Handler) getDriver(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	driver, err := h.driverService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, driver)
}

func (h *Handler) createDriver(c *gin.Context) {
	var req struct {
		Name               string    `json:"name"`
		LicenseNumber      string    `json:"licenseNumber"`
		LicenseExpiryDate  time.Time `json:"licenseExpiryDate"`
		AllowedVehicleType []string  `json:"allowedVehicleType"`
		Status             string    `json:"status"`
		SafetyScore        *float64  `json:"safetyScore"`
		Email              string    `json:"email"`
		Phone              string    `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	if req.Name == "" || req.LicenseNumber == "" || req.LicenseExpiryDate.IsZero() {
		c.JSON(http.StatusBadRequest, errorResponse("name, licenseNumber, and licenseExpiryDate are required."))
		return
	}

	driver, err := h.driverService.Create(c.Request.Context(), service.CreateDriverInput{
		Name:               req.Name,
		LicenseNumber:      req.LicenseNumber,
		LicenseExpiryDate:  req.LicenseExpiryDate,
		AllowedVehicleType: vehicleTypes(req.AllowedVehicleType),
		Status:             model.DriverStatus(req.Status),
		SafetyScore:        req.SafetyScore,
		Email:              req.Email,
		Phone:              req.Phone,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, driver)
}

func (h *Handler) updateDriver(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req struct {
		Name               *string    `json:"name"`
		LicenseNumber      *string    `json:"licenseNumber"`
		LicenseExpiryDate  *time.Time `json:"licenseExpiryDate"`
		AllowedVehicleType []string   `json:"allowedVehicleType"`
		Status             *string    `json:"status"`
		SafetyScore        *float64   `json:"safetyScore"`
		Email              *string    `json:"email"`
		Phone              *string    `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	input := service.UpdateDriverInput{
		Name:              req.Name,
		LicenseNumber:     req.LicenseNumber,
		LicenseExpiryDate: req.LicenseExpiryDate,
		SafetyScore:       req.SafetyScore,
		Email:             req.Email,
		Phone:             req.Phone,
	}
	if req.AllowedVehicleType != nil {
		input.AllowedVehicleType = vehicleTypes(req.AllowedVehicleType)
	}
	if req.Status != nil {
		st := model.DriverStatus(*req.Status)
		input.Status = &st
	}

	driver, err := h.driverService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, driver)
}

func (h *Handler) deleteDriver(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.driverService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Driver deleted."})
}

func vehicleTypes(raw []string) []model.VehicleType {
	types := make([]model.VehicleType, 0, len(raw))
	for _, t := range raw {
		types = append(types, model.VehicleType(t))
	}
	return types
}
