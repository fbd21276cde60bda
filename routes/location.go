package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"complaint-service-server/utils"
)

// RegisterLocationRoutes registers the geolocation update endpoint. The
// group must sit behind AuthMiddleware.
func RegisterLocationRoutes(rg *gin.RouterGroup) {
	rg.POST("/update", UpdateComplaintLocation)
}

// LocationUpdateRequest binds lat/lng as pointers so a coordinate of
// exactly 0 counts as present.
type LocationUpdateRequest struct {
	ComplaintID uint     `json:"complaint_id" binding:"required"`
	Lat         *float64 `json:"lat" binding:"required"`
	Lng         *float64 `json:"lng" binding:"required"`
}

// UpdateComplaintLocation overwrites a complaint's coordinates
func UpdateComplaintLocation(c *gin.Context) {
	var req LocationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status": "error",
			"error":  utils.FormatValidationError(err),
		})
		return
	}

	if err := complaintService.UpdateLocation(req.ComplaintID, *req.Lat, *req.Lng); err != nil {
		c.JSON(serviceErrorStatus(err), gin.H{
			"status": "error",
			"error":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
