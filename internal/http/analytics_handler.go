package http

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"fleetflow/internal/export"
	"fleetflow/internal/model"
	"fleetflow/internal/service"
)

func (h *Handler) operationalCost(c *gin.Context) {
	vehicleID, ok := queryID(c, "vehicleId")
	if !ok {
		return
	}
	reports, err := h.analyticsService.OperationalCost(c.Request.Context(), vehicleID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

func (h *Handler) fuelEfficiency(c *gin.Context) {
	vehicleID, ok := queryID(c, "vehicleId")
	if !ok {
		return
	}
	reports, err := h.analyticsService.FuelEfficiency(c.Request.Context(), vehicleID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

func (h *Handler) vehicleROI(c *gin.Context) {
	vehicleID, ok := queryID(c, "vehicleId")
	if !ok {
		return
	}
	reports, err := h.analyticsService.VehicleROI(c.Request.Context(), vehicleID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

func (h *Handler) costPerKm(c *gin.Context) {
	vehicleID, ok := queryID(c, "vehicleId")
	if !ok {
		return
	}
	reports, err := h.analyticsService.CostPerKm(c.Request.Context(), vehicleID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

func (h *Handler) exportCSV(c *gin.Context) {
	table, err := h.exportService.BuildTable(c.Request.Context(), strings.TrimSpace(c.Query("type")))
	if err != nil {
		h.handleError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, *table); err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", exportFilename(table.Name)))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

func (h *Handler) exportPDF(c *gin.Context) {
	table, err := h.exportService.BuildTable(c.Request.Context(), strings.TrimSpace(c.Query("type")))
	if err != nil {
		h.handleError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WritePDF(&buf, *table); err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", exportFilename(table.Name)))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func exportFilename(name string) string {
	return fmt.Sprintf("fleetflow-%s-%d", name, time.Now().UnixMilli())
}

func (h *Handler) dashboardKPIs(c *gin.Context) {
	var filter service.KPIFilter
	if raw := strings.TrimSpace(c.Query("vehicleType")); raw != "" {
		t := model.VehicleType(raw)
		filter.VehicleType = &t
	}
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		st := model.VehicleStatus(raw)
		filter.Status = &st
	}
	filter.Region = strings.TrimSpace(c.Query("region"))

	kpis, err := h.dashboardService.KPIs(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, kpis)
}
