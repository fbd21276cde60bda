package routes

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"complaint-service-server/models"
)

func TestDeleteEmployeeDetachesAssignments(t *testing.T) {
	env := setupEnv(t)

	// Assign the complaint to the profile and author a remark and a photo
	require.NoError(t, env.db.Model(&env.complaint).Update("assigned_to_id", env.profile.ID).Error)
	remark := models.ComplaintRemark{ComplaintID: env.complaint.ID, EmployeeID: env.profile.ID, Remark: "first visit"}
	require.NoError(t, env.db.Create(&remark).Error)
	photo := models.ComplaintPhoto{ComplaintID: env.complaint.ID, UploadedByID: env.profile.ID, URL: "https://cdn.example.com/evidence.jpg"}
	require.NoError(t, env.db.Create(&photo).Error)

	w := env.request(t, http.MethodDelete, "/api/v1/admin/employees/"+strconv.Itoa(int(env.profile.ID)), nil, &env.admin)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// The complaint survives with its assignment detached
	var reloaded models.Complaint
	require.NoError(t, env.db.First(&reloaded, env.complaint.ID).Error)
	assert.Nil(t, reloaded.AssignedToID)
	assert.Equal(t, models.StatusPending, reloaded.Status)

	// The profile's remarks and photos go with it
	var count int64
	require.NoError(t, env.db.Model(&models.ComplaintRemark{}).Where("employee_id = ?", env.profile.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, env.db.Model(&models.ComplaintPhoto{}).Where("uploaded_by_id = ?", env.profile.ID).Count(&count).Error)
	assert.Zero(t, count)

	// The profile is gone, the user account is kept
	require.NoError(t, env.db.Model(&models.Employee{}).Where("id = ?", env.profile.ID).Count(&count).Error)
	assert.Zero(t, count)
	var user models.User
	require.NoError(t, env.db.First(&user, env.worker.ID).Error)
	assert.True(t, user.IsActive)
}

func TestDeleteEmployeeUnknown(t *testing.T) {
	env := setupEnv(t)

	w := env.request(t, http.MethodDelete, "/api/v1/admin/employees/9999", nil, &env.admin)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
