package routes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"complaint-service-server/cache"
	"complaint-service-server/database"
	"complaint-service-server/models"
	"complaint-service-server/utils"
)

// RegisterAdminCustomerRoutes registers customer management under /customers
func RegisterAdminCustomerRoutes(rg *gin.RouterGroup) {
	rg.GET("/customers", GetAllCustomers)
	rg.POST("/customers", CreateCustomer)
	rg.GET("/customers/:id", GetCustomerById)
	rg.PUT("/customers/:id", UpdateCustomer)
	rg.DELETE("/customers/:id", DeleteCustomer)
}

type customerRequest struct {
	Name          string `json:"name" binding:"required"`
	ContactNumber string `json:"contact_number" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Address       string `json:"address" binding:"required"`
}

// GetAllCustomers returns all customers
func GetAllCustomers(c *gin.Context) {
	var customers []models.Customer
	if err := database.DB.Order("id").Find(&customers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "customers": customers})
}

// GetCustomerById returns a single customer
func GetCustomerById(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
		return
	}

	var customer models.Customer
	if err := database.DB.First(&customer, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "customer": customer})
}

// CreateCustomer creates a customer
func CreateCustomer(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.FormatValidationError(err)})
		return
	}

	customer := models.Customer{
		Name:          req.Name,
		ContactNumber: req.ContactNumber,
		Email:         req.Email,
		Address:       req.Address,
	}
	if err := database.DB.Create(&customer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer"})
		return
	}

	cache.Invalidate(c.Request.Context(), dashboardStatsCacheKey)

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Customer created successfully",
		"customer": customer,
	})
}

// UpdateCustomer updates a customer
func UpdateCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
		return
	}

	var customer models.Customer
	if err := database.DB.First(&customer, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}

	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.FormatValidationError(err)})
		return
	}

	updates := map[string]interface{}{
		"name":           req.Name,
		"contact_number": req.ContactNumber,
		"email":          req.Email,
		"address":        req.Address,
	}
	if err := database.DB.Model(&customer).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update customer"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Customer updated successfully",
		"customer": customer,
	})
}

// DeleteCustomer deletes a customer and, through the cascade, its complaints
func DeleteCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
		return
	}

	var customer models.Customer
	if err := database.DB.First(&customer, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}

	if err := database.DB.Delete(&customer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete customer"})
		return
	}

	cache.Invalidate(c.Request.Context(), dashboardStatsCacheKey)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Customer deleted successfully"})
}
