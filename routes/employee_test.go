package routes

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"complaint-service-server/models"
)

func TestAssignedListWithoutProfile(t *testing.T) {
	env := setupEnv(t)

	bare := models.User{Username: "noprofile", PasswordHash: "x", Role: models.RoleEmployee, IsActive: true}
	require.NoError(t, env.db.Create(&bare).Error)

	w := env.request(t, http.MethodGet, "/api/v1/employee/complaints/assigned", nil, &bare)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Success    bool               `json:"success"`
		Complaints []models.Complaint `json:"complaints"`
		Count      int                `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Complaints)
	assert.Empty(t, resp.Complaints)
	assert.Zero(t, resp.Count)
}

func TestAssignedListFiltersToPrincipal(t *testing.T) {
	env := setupEnv(t)

	require.NoError(t, env.db.Model(&env.complaint).Update("assigned_to_id", env.profile.ID).Error)

	w := env.request(t, http.MethodGet, "/api/v1/employee/complaints/assigned", nil, &env.worker)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Complaints []models.Complaint `json:"complaints"`
		Count      int                `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	require.NotNil(t, resp.Complaints[0].AssignedToID)
	assert.Equal(t, env.profile.ID, *resp.Complaints[0].AssignedToID)
}
