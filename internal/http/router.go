package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(handler *Handler, authMiddleware gin.HandlerFunc, env string) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"*"},
		ExposeHeaders:   []string{"Content-Type", "Content-Disposition"},
		MaxAge:          12 * time.Hour,
	}))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/login", handler.login)
		authRoutes.POST("/forgot-password", handler.forgotPassword)
		authRoutes.POST("/reset-password", handler.resetPassword)
		authRoutes.GET("/me", authMiddleware, handler.me)
	}

	vehicles := api.Group("/vehicles", authMiddleware)
	{
		vehicles.GET("", requireRole(opVehiclesRead), handler.listVehicles)
		vehicles.GET("/available", requireRole(opVehiclesDispatch), handler.listAvailableVehicles)
		vehicles.GET("/:id", requireRole(opVehiclesRead), handler.getVehicle)
		vehicles.POST("", requireRole(opVehiclesManage), handler.createVehicle)
		vehicles.PUT("/:id", requireRole(opVehiclesManage), handler.updateVehicle)
		vehicles.DELETE("/:id", requireRole(opVehiclesManage), handler.deleteVehicle)
	}

	drivers := api.Group("/drivers", authMiddleware)
	{
		drivers.GET("", requireRole(opDriversRead), handler.listDrivers)
		drivers.GET("/available", requireRole(opDriversDispatch), handler.listAvailableDrivers)
		drivers.GET("/:id", requireRole(opDriversRead), handler.getDriver)
		drivers.POST("", requireRole(opDriversManage), handler.createDriver)
		drivers.PUT("/:id", requireRole(opDriversUpdate), handler.updateDriver)
		drivers.DELETE("/:id", requireRole(opDriversManage), handler.deleteDriver)
	}

	trips := api.Group("/trips", authMiddleware)
	{
		trips.GET("", requireRole(opTripsRead), handler.listTrips)
		trips.GET("/:id", requireRole(opTripsRead), handler.getTrip)
		trips.POST("", requireRole(opTripsWrite), handler.createTrip)
		trips.PUT("/:id", requireRole(opTripsWrite), handler.updateTrip)
		trips.PATCH("/:id/status", requireRole(opTripsWrite), handler.updateTripStatus)
		trips.DELETE("/:id", requireRole(opTripsWrite), handler.deleteTrip)
	}

	fuelLogs := api.Group("/fuel-logs", authMiddleware)
	{
		fuelLogs.GET("", requireRole(opFuelLogsRead), handler.listFuelLogs)
		fuelLogs.GET("/:id", requireRole(opFuelLogsRead), handler.getFuelLog)
		fuelLogs.POST("", requireRole(opFuelLogsCreate), handler.createFuelLog)
		fuelLogs.PUT("/:id", requireRole(opFuelLogsManage), handler.updateFuelLog)
		fuelLogs.DELETE("/:id", requireRole(opFuelLogsManage), handler.deleteFuelLog)
	}

	serviceLogs := api.Group("/service-logs", authMiddleware)
	{
		serviceLogs.GET("", requireRole(opServiceLogsRead), handler.listServiceLogs)
		serviceLogs.GET("/:id", requireRole(opServiceLogsRead), handler.getServiceLog)
		serviceLogs.POST("", requireRole(opServiceLogsWrite), handler.createServiceLog)
		serviceLogs.PUT("/:id", requireRole(opServiceLogsWrite), handler.updateServiceLog)
		serviceLogs.DELETE("/:id", requireRole(opServiceLogsDelete), handler.deleteServiceLog)
	}

	dashboard := api.Group("/dashboard", authMiddleware)
	{
		dashboard.GET("/kpis", requireRole(opDashboardRead), handler.dashboardKPIs)
	}

	analytics := api.Group("/analytics", authMiddleware, requireRole(opAnalyticsRead))
	{
		analytics.GET("/operational-cost", handler.operationalCost)
		analytics.GET("/fuel-efficiency", handler.fuelEfficiency)
		analytics.GET("/vehicle-roi", handler.vehicleROI)
		analytics.GET("/cost-per-km", handler.costPerKm)
		analytics.GET("/export/csv", handler.exportCSV)
		analytics.GET("/export/pdf", handler.exportPDF)
	}

	return router
}
