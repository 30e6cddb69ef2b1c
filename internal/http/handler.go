package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"fleetflow/internal/service"
)

type Handler struct {
	authService       *service.AuthService
	vehicleService    *service.VehicleService
	driverService     *service.DriverService
	tripService       *service.TripService
	fuelLogService    *service.FuelLogService
	serviceLogService *service.ServiceLogService
	dashboardService  *service.DashboardService
	analyticsService  *service.AnalyticsService
	exportService     *service.ExportService
	log               zerolog.Logger
}

func NewHandler(
	authService *service.AuthService,
	vehicleService *service.VehicleService,
	driverService *service.DriverService,
	tripService *service.TripService,
	fuelLogService *service.FuelLogService,
	serviceLogService *service.ServiceLogService,
	dashboardService *service.DashboardService,
	analyticsService *service.AnalyticsService,
	exportService *service.ExportService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		authService:       authService,
		vehicleService:    vehicleService,
		driverService:     driverService,
		tripService:       tripService,
		fuelLogService:    fuelLogService,
		serviceLogService: serviceLogService,
		dashboardService:  dashboardService,
		analyticsService:  analyticsService,
		exportService:     exportService,
		log:               log,
	}
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid id."))
		return uuid.Nil, false
	}
	return id, true
}

// queryID parses an optional ?vehicleId style filter; an absent parameter is
// not an error.
func queryID(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid "+name+"."))
		return nil, false
	}
	return &id, true
}
