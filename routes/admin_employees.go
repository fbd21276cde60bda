package routes

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"complaint-service-server/cache"
	"complaint-service-server/database"
	"complaint-service-server/models"
	"complaint-service-server/utils"
)

// RegisterAdminEmployeeRoutes registers employee management under /employees
func RegisterAdminEmployeeRoutes(rg *gin.RouterGroup) {
	rg.GET("/employees", GetAllEmployees)
	rg.POST("/employees", CreateEmployee)
	rg.GET("/employees/:id", GetEmployeeById)
	rg.PUT("/employees/:id", UpdateEmployee)
	rg.DELETE("/employees/:id", DeleteEmployee)
}

// employeeRequest is the composite payload covering the user account and the
// operational profile, mirroring the single employee form.
type employeeRequest struct {
	Username    string  `json:"username" binding:"required"`
	FirstName   string  `json:"first_name" binding:"required"`
	LastName    string  `json:"last_name" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password"`
	Phone       string  `json:"phone" binding:"required"`
	Designation string  `json:"designation" binding:"required"`
	Salary      float64 `json:"salary" binding:"gte=0"`
	Address     *string `json:"address"`
}

// GetAllEmployees returns all employees with their user accounts
func GetAllEmployees(c *gin.Context) {
	var employees []models.Employee
	if err := database.DB.Preload("User").Order("id").Find(&employees).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch employees"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "employees": employees})
}

// GetEmployeeById returns a single employee
func GetEmployeeById(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID"})
		return
	}

	var employee models.Employee
	if err := database.DB.Preload("User").First(&employee, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "employee": employee})
}

// CreateEmployee creates the user account (role=employee) and the profile in
// a single transaction. No partial writes on validation failure.
func CreateEmployee(c *gin.Context) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.FormatValidationError(err)})
		return
	}

	if req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required"})
		return
	}
	if !utils.ValidatePassword(req.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 8 characters and contain both letters and numbers"})
		return
	}
	if !utils.ValidatePhoneNumber(req.Phone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Enter a valid phone number (10-15 digits)"})
		return
	}

	var count int64
	database.DB.Model(&models.User{}).Where("username = ?", req.Username).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username is already taken"})
		return
	}
	database.DB.Model(&models.User{}).Where("email = ?", req.Email).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "This email address is already in use"})
		return
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	var employee models.Employee
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		user := models.User{
			Username:     req.Username,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Email:        req.Email,
			PasswordHash: passwordHash,
			Role:         models.RoleEmployee,
			IsActive:     true,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		employee = models.Employee{
			UserID:      user.ID,
			Phone:       req.Phone,
			Designation: req.Designation,
			Salary:      req.Salary,
			Address:     req.Address,
		}
		return tx.Create(&employee).Error
	})
	if err != nil {
		log.Printf("❌ Failed to create employee: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create employee"})
		return
	}

	database.DB.Preload("User").First(&employee, employee.ID)
	cache.Invalidate(c.Request.Context(), dashboardStatsCacheKey)

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Employee created successfully",
		"employee": employee,
	})
}

// UpdateEmployee updates the user account and the profile together. The
// password changes only when one is provided.
func UpdateEmployee(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID"})
		return
	}

	var employee models.Employee
	if err := database.DB.Preload("User").First(&employee, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}

	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.FormatValidationError(err)})
		return
	}

	if req.Password != "" && !utils.ValidatePassword(req.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 8 characters and contain both letters and numbers"})
		return
	}
	if !utils.ValidatePhoneNumber(req.Phone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Enter a valid phone number (10-15 digits)"})
		return
	}

	var count int64
	database.DB.Model(&models.User{}).
		Where("email = ? AND id != ?", req.Email, employee.UserID).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "This email address is already in use"})
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		userUpdates := map[string]interface{}{
			"username":   req.Username,
			"first_name": req.FirstName,
			"last_name":  req.LastName,
			"email":      req.Email,
		}
		if req.Password != "" {
			hash, err := utils.HashPassword(req.Password)
			if err != nil {
				return err
			}
			userUpdates["password_hash"] = hash
		}
		if err := tx.Model(&models.User{}).Where("id = ?", employee.UserID).Updates(userUpdates).Error; err != nil {
			return err
		}

		return tx.Model(&employee).Updates(map[string]interface{}{
			"phone":       req.Phone,
			"designation": req.Designation,
			"salary":      req.Salary,
			"address":     req.Address,
		}).Error
	})
	if err != nil {
		log.Printf("❌ Failed to update employee %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update employee"})
		return
	}

	database.DB.Preload("User").First(&employee, employee.ID)

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Employee updated successfully",
		"employee": employee,
	})
}

// DeleteEmployee removes the profile. Complaints assigned to it are detached
// (assigned_to becomes null), their remarks and photos go with the profile,
// and the user account is kept.
func DeleteEmployee(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID"})
		return
	}

	var employee models.Employee
	if err := database.DB.First(&employee, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Complaint{}).
			Where("assigned_to_id = ?", employee.ID).
			Update("assigned_to_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("employee_id = ?", employee.ID).Delete(&models.ComplaintRemark{}).Error; err != nil {
			return err
		}
		if err := tx.Where("uploaded_by_id = ?", employee.ID).Delete(&models.ComplaintPhoto{}).Error; err != nil {
			return err
		}
		return tx.Delete(&employee).Error
	})
	if err != nil {
		log.Printf("❌ Failed to delete employee %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete employee"})
		return
	}

	cache.Invalidate(c.Request.Context(), dashboardStatsCacheKey)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Employee deleted successfully"})
}
