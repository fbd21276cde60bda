package routes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"complaint-service-server/cache"
	"complaint-service-server/middleware"
	"complaint-service-server/services"
	"complaint-service-server/utils"
)

// RegisterAdminComplaintRoutes registers complaint management under /complaints
func RegisterAdminComplaintRoutes(rg *gin.RouterGroup) {
	rg.GET("/complaints", GetAllComplaints)
	rg.POST("/complaints", CreateComplaint)
	rg.GET("/complaints/:id", GetComplaintById)
	rg.PUT("/complaints/:id", UpdateComplaint)
	rg.POST("/complaints/:id/assign", AssignComplaint)
}

// serviceErrorStatus maps workflow sentinels to HTTP status codes
func serviceErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrComplaintNotFound),
		errors.Is(err, services.ErrCustomerNotFound),
		errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrEmployeeNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidLevel),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrEmptyRemark):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrEmployeeProfileRequired):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// GetAllComplaints returns all complaints, newest first, with the optional
// combinable filters: assigned_to, status, date, product, customer.
func GetAllComplaints(c *gin.Context) {
	filter := services.ComplaintFilter{
		Status: c.Query("status"),
		Date:   c.Query("date"),
	}
	if v := c.Query("assigned_to"); v != "" {
		if id, err := strconv.Atoi(v); err == nil {
			assignedID := uint(id)
			filter.AssignedToID = &assignedID
		}
	}
	if v := c.Query("product"); v != "" {
		if id, err := strconv.Atoi(v); err == nil {
			productID := uint(id)
			filter.ProductID = &productID
		}
	}
	if v := c.Query("customer"); v != "" {
		if id, err := strconv.Atoi(v); err == nil {
			customerID := uint(id)
			filter.CustomerID = &customerID
		}
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

// CreateComplaint registers a complaint on behalf of the current admin
func CreateComplaint(c *gin.Context) {
	var input services.CreateComplaintInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.FormatValidationError(err)})
		return
	}

	admin, _ := middleware.CurrentUser(c)

	complaint, err := complaintService.Create(input, admin)
	if err != nil {
		c.JSON(serviceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	cache.Invalidate(c.Request.Context(), dashboardStatsCacheKey)

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Complaint registered successfully",
		"complaint": complaint,
	})
}

// GetComplaintById returns a complaint with its remarks, newest first
func GetComplaintById(c *gin.Context) {
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

// UpdateComplaint edits a complaint's reference fields
func UpdateComplaint(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid complaint ID"})
		return
	}

	var input services.CreateComplaintInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.FormatValidationError(err)})
		return
	}

	complaint, err := complaintService.Update(uint(id), input)
	if err != nil {
		c.JSON(serviceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Complaint updated successfully",
		"complaint": complaint,
	})
}

// AssignComplaint sets the assignee chosen by the admin. Re-assignment
// silently overwrites the previous assignee.
func AssignComplaint(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid complaint ID"})
		return
	}

	var req struct {
		EmployeeID uint `json:"employee_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.FormatValidationError(err)})
		return
	}

	complaint, err := complaintService.Assign(uint(id), req.EmployeeID)
	if err != nil {
		c.JSON(serviceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Complaint assigned successfully",
		"complaint": complaint,
	})
}
