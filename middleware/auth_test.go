package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"complaint-service-server/config"
	"complaint-service-server/database"
	"complaint-service-server/models"
	"complaint-service-server/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.Load()
	os.Exit(m.Run())
}

func setupAuthTest(t *testing.T) (admin, employee, inactive models.User) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	database.DB = db

	admin = models.User{Username: "root", PasswordHash: "x", Role: models.RoleAdmin, IsActive: true}
	employee = models.User{Username: "jdoe", PasswordHash: "x", Role: models.RoleEmployee, IsActive: true}
	inactive = models.User{Username: "gone", PasswordHash: "x", Role: models.RoleEmployee, IsActive: false}
	require.NoError(t, db.Create(&admin).Error)
	require.NoError(t, db.Create(&employee).Error)
	require.NoError(t, db.Create(&inactive).Error)

	return admin, employee, inactive
}

func buildRouter() *gin.Engine {
	router := gin.New()
	adminGroup := router.Group("/admin", AuthMiddleware(), AdminOnly())
	adminGroup.GET("/ping", func(c *gin.Context) {
		user, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"user_id": user.ID})
	})
	employeeGroup := router.Group("/employee", AuthMiddleware(), EmployeeOnly())
	employeeGroup.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func doRequest(t *testing.T, router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()
	token, err := utils.GenerateToken(user.ID, string(user.Role))
	require.NoError(t, err)
	return token
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	setupAuthTest(t)
	router := buildRouter()

	w := doRequest(t, router, "/admin/ping", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsBadToken(t *testing.T) {
	setupAuthTest(t)
	router := buildRouter()

	w := doRequest(t, router, "/admin/ping", "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsInactiveUser(t *testing.T) {
	_, _, inactive := setupAuthTest(t)
	router := buildRouter()

	w := doRequest(t, router, "/employee/ping", tokenFor(t, inactive))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleGates(t *testing.T) {
	admin, employee, _ := setupAuthTest(t)
	router := buildRouter()

	// Matching role passes
	w := doRequest(t, router, "/admin/ping", tokenFor(t, admin))
	assert.Equal(t, http.StatusOK, w.Code)
	w = doRequest(t, router, "/employee/ping", tokenFor(t, employee))
	assert.Equal(t, http.StatusOK, w.Code)

	// Role mismatch is forbidden in both directions
	w = doRequest(t, router, "/admin/ping", tokenFor(t, employee))
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = doRequest(t, router, "/employee/ping", tokenFor(t, admin))
	assert.Equal(t, http.StatusForbidden, w.Code)
}
