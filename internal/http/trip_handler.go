package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fleetflow/internal/model"
	"fleetflow/internal/service"
)

func (h *Handler) listTrips(c *gin.Context) {
	var opts service.ListTripsOptions
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		st := model.TripStatus(raw)
		opts.Status = &st
	}
	vehicleID, ok := queryID(c, "vehicleId")
	if !ok {
		return
	}
	opts.VehicleID = vehicleID
	driverID, ok := queryID(c, "driverId")
	if !ok {
		return
	}
	opts.DriverID = driverID

	trips, err := h.tripService.List(c.Request.Context(), opts)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

func (h *Handler) getTrip(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	trip, err := h.tripService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

func (h *Handler) createTrip(c *gin.Context) {
	var req struct {
		VehicleID   string   `json:"vehicleId"`
		DriverID    string   `json:"driverId"`
		CargoWeight *float64 `json:"cargoWeight"`
		Origin      string   `json:"origin"`
		Destination string   `json:"destination"`
		Revenue     float64  `json:"revenue"`
		Distance    float64  `json:"distance"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	if req.VehicleID == "" || req.DriverID == "" || req.CargoWeight == nil || req.Origin == "" || req.Destination == "" {
		c.JSON(http.StatusBadRequest, errorResponse("vehicleId, driverId, cargoWeight, origin, and destination are required."))
		return
	}
	vehicleID, err := uuid.Parse(req.VehicleID)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid vehicleId."))
		return
	}
	driverID, err := uuid.Parse(req.DriverID)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid driverId."))
		return
	}

	trip, err := h.tripService.Create(c.Request.Context(), service.CreateTripInput{
		VehicleID:   vehicleID,
		DriverID:    driverID,
		CargoWeight: *req.CargoWeight,
		Origin:      req.Origin,
		Destination: req.Destination,
		Revenue:     req.Revenue,
		Distance:    req.Distance,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trip)
}

func (h *Handler) updateTrip(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req struct {
		VehicleID   *string  `json:"vehicleId"`
		DriverID    *string  `json:"driverId"`
		CargoWeight *float64 `json:"cargoWeight"`
		Origin      *string  `json:"origin"`
		Destination *string  `json:"destination"`
		Revenue     *float64 `json:"revenue"`
		Distance    *float64 `json:"distance"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	input := service.UpdateTripInput{
		CargoWeight: req.CargoWeight,
		Origin:      req.Origin,
		Destination: req.Destination,
		Revenue:     req.Revenue,
		Distance:    req.Distance,
	}
	if req.VehicleID != nil {
		vehicleID, err := uuid.Parse(*req.VehicleID)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("Invalid vehicleId."))
			return
		}
		input.VehicleID = &vehicleID
	}
	if req.DriverID != nil {
		driverID, err := uuid.Parse(*req.DriverID)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("Invalid driverId."))
			return
		}
		input.DriverID = &driverID
	}

	trip, err := h.tripService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

func (h *Handler) updateTripStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	trip, err := h.tripService.UpdateStatus(c.Request.Context(), id, model.TripStatus(req.Status))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

func (h *Handler) deleteTrip(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.tripService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Trip deleted."})
}
