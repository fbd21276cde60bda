package routes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"complaint-service-server/cache"
	"complaint-service-server/middleware"
	"complaint-service-server/models"
	"complaint-service-server/services"
	"complaint-service-server/utils"
)

// RegisterEmployeeRoutes registers the employee-facing surface under /employee
func RegisterEmployeeRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", GetEmployeeDashboard)
	rg.GET("/complaints/assigned", GetAssignedComplaints)
	rg.GET("/complaints/unassigned", GetUnassignedComplaints)
	rg.GET("/complaints/:id", GetComplaintForEmployee)
	rg.POST("/complaints/:id/claim", ClaimComplaint)
	rg.POST("/complaints/:id/remarks", AddComplaintRemark)
	rg.POST("/complaints/:id/status", UpdateComplaintStatus)
}

// GetEmployeeDashboard returns the principal's assigned count and the global
// unassigned count
func GetEmployeeDashboard(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	assigned, unassigned, err := complaintService.EmployeeDashboard(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":               true,
		"assigned_complaints":   assigned,
		"unassigned_complaints": unassigned,
	})
}

// GetAssignedComplaints lists the principal's complaints, newest first, with
// optional status, date and description search filters
func GetAssignedComplaints(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	employee, err := complaintService.EmployeeProfile(user.ID)
	if err != nil {
		if errors.Is(err, services.ErrEmployeeProfileRequired) {
			// No profile means no assignments
			c.JSON(http.StatusOK, gin.H{"success": true, "complaints": []models.Complaint{}, "count": 0})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load employee profile"})
		return
	}

	filter := services.ComplaintFilter{
		AssignedToID: &employee.ID,
		Status:       c.Query("status"),
		Date:         c.Query("date"),
		Search:       c.Query("search"),
	}

	complaints, err := complaintService.List(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch complaints"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"complaints": complaints,
		"count":      len(complaints),
	})
}

// GetUnassignedComplaints lists complaints with no assignee, newest first
func GetUnassignedComplaints(c *gin.Context) {
	complaints, err := complaintService.List(services.ComplaintFilter{Unassigned: true})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch complaints"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"complaints": complaints,
		"count":      len(complaints),
	})
}

// GetComplaintForEmployee returns a complaint with its remarks
func GetComplaintForEmployee(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid complaint ID"})
		return
	}

	complaint, err := complaintService.Get(uint(id))
	if err != nil {
		c.JSON(serviceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	remarks, err := complaintService.Remarks(complaint.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch remarks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"complaint": complaint,
		"remarks":   remarks,
	})
}

// ClaimComplaint assigns the complaint to the principal's own profile
func ClaimComplaint(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid complaint ID"})
		return
	}

	user, _ := middleware.CurrentUser(c)

	complaint, err := complaintService.Claim(uint(id), user)
	if err != nil {
		c.JSON(serviceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Complaint assigned to you successfully",
		"complaint": complaint,
	})
}

// AddComplaintRemark appends a work note to the complaint
func AddComplaintRemark(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid complaint ID"})
		return
	}

	var req struct {
		Remark string `json:"remark" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.FormatValidationError(err)})
		return
	}

	user, _ := middleware.CurrentUser(c)

	remark, err := complaintService.AddRemark(uint(id), user, req.Remark)
	if err != nil {
		c.JSON(serviceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Remark added successfully",
		"remark":  remark,
	})
}

// UpdateComplaintStatus moves the complaint to the requested status. Unknown
// values are rejected and nothing is written.
func UpdateComplaintStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid complaint ID"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.FormatValidationError(err)})
		return
	}

	complaint, err := complaintService.UpdateStatus(uint(id), req.Status)
	if err != nil {
		c.JSON(serviceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	cache.Invalidate(c.Request.Context(), dashboardStatsCacheKey)

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Status updated successfully",
		"complaint": complaint,
	})
}
