package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
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

type testEnv struct {
	router    *gin.Engine
	db        *gorm.DB
	admin     models.User
	worker    models.User
	profile   models.Employee
	complaint models.Complaint
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	database.DB = db

	router := gin.New()
	Setup(router, db)

	env := &testEnv{router: router, db: db}

	env.admin = models.User{Username: "root", PasswordHash: "x", Role: models.RoleAdmin, IsActive: true}
	env.worker = models.User{Username: "jdoe", PasswordHash: "x", Role: models.RoleEmployee, IsActive: true}
	require.NoError(t, db.Create(&env.admin).Error)
	require.NoError(t, db.Create(&env.worker).Error)

	env.profile = models.Employee{UserID: env.worker.ID, Phone: "1234567890", Designation: "Technician", Salary: 30000}
	require.NoError(t, db.Create(&env.profile).Error)

	customer := models.Customer{Name: "Acme", ContactNumber: "+11234567890", Email: "a@acme.com", Address: "addr"}
	product := models.Product{Name: "Widget", Price: 100, Tax: 10}
	require.NoError(t, db.Create(&customer).Error)
	require.NoError(t, db.Create(&product).Error)

	env.complaint = models.Complaint{
		CustomerID:  customer.ID,
		ProductID:   product.ID,
		Level:       models.LevelTwo,
		Description: "Widget stopped working",
		Status:      models.StatusPending,
		CreatedByID: env.admin.ID,
	}
	require.NoError(t, db.Create(&env.complaint).Error)

	return env
}

func (e *testEnv) request(t *testing.T, method, path string, body interface{}, user *models.User) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if user != nil {
		token, err := utils.GenerateToken(user.ID, string(user.Role))
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) post(t *testing.T, path string, body interface{}, user *models.User) *httptest.ResponseRecorder {
	t.Helper()
	return e.request(t, http.MethodPost, path, body, user)
}

func TestLocationUpdateRequiresAuth(t *testing.T) {
	env := setupEnv(t)

	w := env.post(t, "/api/v1/location/update", gin.H{
		"complaint_id": env.complaint.ID,
		"lat":          4.05,
		"lng":          9.7,
	}, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLocationUpdateAcceptsZeroCoordinate(t *testing.T) {
	env := setupEnv(t)

	w := env.post(t, "/api/v1/location/update", gin.H{
		"complaint_id": env.complaint.ID,
		"lat":          0,
		"lng":          6.61,
	}, &env.worker)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"status":"success"}`, w.Body.String())

	var reloaded models.Complaint
	require.NoError(t, env.db.First(&reloaded, env.complaint.ID).Error)
	require.NotNil(t, reloaded.LocationLat)
	require.NotNil(t, reloaded.LocationLng)
	assert.Equal(t, 0.0, *reloaded.LocationLat)
	assert.Equal(t, 6.61, *reloaded.LocationLng)
}

func TestLocationUpdateMissingFields(t *testing.T) {
	env := setupEnv(t)

	w := env.post(t, "/api/v1/location/update", gin.H{
		"complaint_id": env.complaint.ID,
		"lat":          4.05,
	}, &env.worker)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp["status"])
}

func TestLocationUpdateUnknownComplaint(t *testing.T) {
	env := setupEnv(t)

	w := env.post(t, "/api/v1/location/update", gin.H{
		"complaint_id": 9999,
		"lat":          4.05,
		"lng":          9.7,
	}, &env.worker)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminCreateAndEmployeeClaimOverHTTP(t *testing.T) {
	env := setupEnv(t)

	// Admin registers a complaint
	w := env.post(t, "/api/v1/admin/complaints", gin.H{
		"customer_id": env.complaint.CustomerID,
		"product_id":  env.complaint.ProductID,
		"level":       "Level 1",
		"description": "second unit dead on arrival",
	}, &env.admin)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Complaint models.Complaint `json:"complaint"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, models.StatusPending, created.Complaint.Status)
	assert.Nil(t, created.Complaint.AssignedToID)

	// An employee cannot reach the admin surface
	w = env.post(t, "/api/v1/admin/complaints", gin.H{
		"customer_id": env.complaint.CustomerID,
		"product_id":  env.complaint.ProductID,
		"level":       "Level 1",
		"description": "sneaky",
	}, &env.worker)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// The employee claims the new complaint for themselves
	w = env.post(t, "/api/v1/employee/complaints/"+strconv.Itoa(int(created.Complaint.ID))+"/claim", gin.H{}, &env.worker)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var claimed struct {
		Complaint models.Complaint `json:"complaint"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &claimed))
	require.NotNil(t, claimed.Complaint.AssignedToID)
	assert.Equal(t, env.profile.ID, *claimed.Complaint.AssignedToID)
}
