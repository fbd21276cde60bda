package routes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"complaint-service-server/database"
	"complaint-service-server/middleware"
	"complaint-service-server/models"
	"complaint-service-server/utils"
)

// RegisterAuthRoutes registers login under the given group
func RegisterAuthRoutes(rg *gin.RouterGroup) {
	rg.POST("/login", Login)
}

// RegisterMeRoute registers the authenticated principal endpoint
func RegisterMeRoute(rg *gin.RouterGroup) {
	rg.GET("/me", GetCurrentUser)
}

// Login authenticates a user by username and password and issues a JWT.
// The role in the response tells the client which dashboard to open.
func Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.FormatValidationError(err)})
		return
	}

	var user models.User
	if err := database.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !user.IsActive {
		log.Printf("❌ Login attempt by inactive user %d", user.ID)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		log.Printf("❌ Failed to generate token for user %d: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	log.Printf("✅ User %d (%s) logged in", user.ID, user.Role)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

// GetCurrentUser returns the authenticated principal
func GetCurrentUser(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	response := gin.H{
		"success": true,
		"user":    user,
	}

	// Attach the employee profile when one exists
	if user.IsEmployee() {
		var employee models.Employee
		if err := database.DB.Where("user_id = ?", user.ID).First(&employee).Error; err == nil {
			response["employee_profile"] = employee
		}
	}

	c.JSON(http.StatusOK, response)
}
