package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleetflow/internal/http/middleware"
	"fleetflow/internal/model"
)

type operation string

const (
	opVehiclesRead      operation = "vehicles.read"
	opVehiclesDispatch  operation = "vehicles.dispatch"
	opVehiclesManage    operation = "vehicles.manage"
	opDriversRead       operation = "drivers.read"
	opDriversDispatch   operation = "drivers.dispatch"
	opDriversManage     operation = "drivers.manage"
	opDriversUpdate     operation = "drivers.update"
	opTripsRead         operation = "trips.read"
	opTripsWrite        operation = "trips.write"
	opFuelLogsRead      operation = "fuel-logs.read"
	opFuelLogsCreate    operation = "fuel-logs.create"
	opFuelLogsManage    operation = "fuel-logs.manage"
	opServiceLogsRead   operation = "service-logs.read"
	opServiceLogsWrite  operation = "service-logs.write"
	opServiceLogsDelete operation = "service-logs.delete"
	opDashboardRead     operation = "dashboard.read"
	opAnalyticsRead     operation = "analytics.read"
)

var allRoles = []model.Role{
	model.RoleFleetManager,
	model.RoleDispatcher,
	model.RoleSafetyOfficer,
	model.RoleFinancialAnalyst,
}

// rolePolicy is the single source of truth for which roles may perform each
// operation; routes reference operations instead of repeating role lists.
var rolePolicy = map[operation][]model.Role{
	opVehiclesRead:      allRoles,
	opVehiclesDispatch:  {model.RoleFleetManager, model.RoleDispatcher},
	opVehiclesManage:    {model.RoleFleetManager},
	opDriversRead:       allRoles,
	opDriversDispatch:   {model.RoleFleetManager, model.RoleDispatcher},
	opDriversManage:     {model.RoleFleetManager},
	opDriversUpdate:     {model.RoleFleetManager, model.RoleSafetyOfficer},
	opTripsRead:         allRoles,
	opTripsWrite:        {model.RoleFleetManager, model.RoleDispatcher},
	opFuelLogsRead:      allRoles,
	opFuelLogsCreate:    {model.RoleFleetManager, model.RoleDispatcher},
	opFuelLogsManage:    {model.RoleFleetManager, model.RoleFinancialAnalyst},
	opServiceLogsRead:   allRoles,
	opServiceLogsWrite:  {model.RoleFleetManager, model.RoleSafetyOfficer},
	opServiceLogsDelete: {model.RoleFleetManager},
	opDashboardRead:     allRoles,
	opAnalyticsRead:     {model.RoleFleetManager, model.RoleFinancialAnalyst},
}

// requireRole denies the request unless the principal's role appears in the
// policy table entry for the operation. Authentication is checked first, so
// an unauthenticated request never reaches the role comparison.
func requireRole(op operation) gin.HandlerFunc {
	allowed := rolePolicy[op]
	return func(c *gin.Context) {
		principal, ok := middleware.MustPrincipal(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized."})
			return
		}
		for _, role := range allowed {
			if principal.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Insufficient permissions for this action."})
	}
}
