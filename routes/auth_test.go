package routes

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"complaint-service-server/models"
	"complaint-service-server/utils"
)

func seedLoginUsers(t *testing.T, env *testEnv) {
	t.Helper()

	hash, err := utils.HashPassword("secret1234")
	require.NoError(t, err)

	active := models.User{Username: "mlopez", PasswordHash: hash, Role: models.RoleEmployee, IsActive: true}
	inactive := models.User{Username: "gone", PasswordHash: hash, Role: models.RoleEmployee, IsActive: false}
	require.NoError(t, env.db.Create(&active).Error)
	require.NoError(t, env.db.Create(&inactive).Error)
}

func TestLogin(t *testing.T) {
	env := setupEnv(t)
	seedLoginUsers(t, env)

	w := env.post(t, "/api/v1/auth/login", gin.H{"username": "mlopez", "password": "secret1234"}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Success bool        `json:"success"`
		Token   string      `json:"token"`
		User    models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, models.RoleEmployee, resp.User.Role)

	// The issued token resolves back to the same principal
	require.NotEmpty(t, resp.Token)
	claims, err := utils.VerifyToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, string(models.RoleEmployee), claims.Role)
}

func TestLoginRejections(t *testing.T) {
	env := setupEnv(t)
	seedLoginUsers(t, env)

	wrongPassword := env.post(t, "/api/v1/auth/login", gin.H{"username": "mlopez", "password": "wrong0000"}, nil)
	unknownUser := env.post(t, "/api/v1/auth/login", gin.H{"username": "nobody", "password": "secret1234"}, nil)
	inactive := env.post(t, "/api/v1/auth/login", gin.H{"username": "gone", "password": "secret1234"}, nil)

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.Equal(t, http.StatusUnauthorized, inactive.Code)

	// The body gives no hint which part of the credentials was wrong
	assert.JSONEq(t, wrongPassword.Body.String(), unknownUser.Body.String())
	assert.JSONEq(t, wrongPassword.Body.String(), inactive.Body.String())
	assert.NotContains(t, unknownUser.Body.String(), "nobody")
}
