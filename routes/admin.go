package routes

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"complaint-service-server/cache"
	"complaint-service-server/services"
)

const dashboardStatsCacheKey = "admin:dashboard:stats"

// GetDashboardStats returns the admin dashboard counters, cached in redis
// for a short window when a client is configured.
func GetDashboardStats(c *gin.Context) {
	var stats services.DashboardStats
	if cache.GetJSON(c.Request.Context(), dashboardStatsCacheKey, &stats) {
		c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats, "cached": true})
		return
	}

	fresh, err := complaintService.Stats()
	if err != nil {
		log.Printf("❌ Failed to compute dashboard stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard stats"})
		return
	}

	cache.SetJSON(c.Request.Context(), dashboardStatsCacheKey, fresh, 30*time.Second)

	c.JSON(http.StatusOK, gin.H{"success": true, "stats": fresh})
}
