package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"complaint-service-server/middleware"
	"complaint-service-server/services"
)

// complaintService is shared by the handlers in this package
var complaintService *services.ComplaintService

// Setup wires the workflow service and registers every route group on the
// router. Called once from main with the live database handle.
func Setup(router *gin.Engine, db *gorm.DB) {
	complaintService = services.NewComplaintService(db)

	api := router.Group("/api/v1")

	// Auth routes (no authentication required) - with strict rate limiting
	authRoutes := api.Group("/auth")
	authRoutes.Use(middleware.AuthRateLimitMiddleware())
	RegisterAuthRoutes(authRoutes)

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		me := protected.Group("/auth")
		RegisterMeRoute(me)

		// Geolocation updates (any authenticated principal)
		locationRoutes := protected.Group("/location")
		RegisterLocationRoutes(locationRoutes)

		// Admin surface
		adminRoutes := protected.Group("/admin")
		adminRoutes.Use(middleware.AdminOnly())
		{
			adminRoutes.GET("/dashboard/stats", GetDashboardStats)
			RegisterAdminEmployeeRoutes(adminRoutes)
			RegisterAdminCustomerRoutes(adminRoutes)
			RegisterAdminProductRoutes(adminRoutes)
			RegisterAdminComplaintRoutes(adminRoutes)
		}

		// Employee surface
		employeeRoutes := protected.Group("/employee")
		employeeRoutes.Use(middleware.EmployeeOnly())
		{
			RegisterEmployeeRoutes(employeeRoutes)
			RegisterMediaRoutes(employeeRoutes)
		}
	}
}
