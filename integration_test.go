package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/QUARTER-salon/practice-tracker/config"
	"github.com/QUARTER-salon/practice-tracker/models"
	"github.com/QUARTER-salon/practice-tracker/services"
	"github.com/QUARTER-salon/practice-tracker/tests/testutil"
	"github.com/QUARTER-salon/practice-tracker/utils"
)

// setupIntegrationRouter wires the full application stack over an
// in-memory database.
func setupIntegrationRouter(t *testing.T) *gin.Engine {
	t.Helper()
	testutil.MustSetTestEnvironment(t)
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		GoEnv:             "test",
		SessionSecret:     "integration-secret",
		SessionTTLMinutes: 60,
		OIDCDomain:        "example.auth0.com",
		OIDCAudience:      "https://practice-tracker.example.com",
		Port:              "8080",
	}
	config.SetConfig(cfg)

	require.NoError(t, config.ConnectDatabase(cfg))
	db := config.GetDB()
	require.NoError(t, config.MigrateDatabase(db))

	logger, err := config.NewLogger(cfg)
	require.NoError(t, err)

	sessions := services.NewSessionService(db, logger, cfg.SessionSecret, cfg.SessionTTLMinutes)
	auth := services.NewAuthService(db, logger, sessions)
	master := services.NewMasterService(db, logger)
	form := services.NewFormService(db, logger)
	practice := services.NewPracticeService(db, logger)
	report := services.NewReportService(db, logger)
	export := services.NewExportService(logger, nil)
	importer := services.NewImportService(db, logger)

	return setupRouter(cfg, auth, sessions, master, form, practice, report, export, importer)
}

func seedIntegrationRoster(t *testing.T) {
	t.Helper()
	db := config.GetDB()

	hash, err := utils.HashPassword("correct-horse")
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Staff{
		EmployeeID: "1001", Email: "sato@example.com", Name: "Sato",
		Store: "Shibuya", Role: "Stylist", PasswordHash: hash,
	}).Error)

	adminHash, err := utils.HashPassword("admin-pass")
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Staff{
		EmployeeID: "9001", Email: "admin@example.com", Name: "Admin",
		Store: "Shibuya", Role: "Manager", AdminFlag: "TRUE", PasswordHash: adminHash,
	}).Error)
}

func loginCookie(t *testing.T, router *gin.Engine, employeeID, password string) *http.Cookie {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"employee_id": employeeID, "password": password})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "session" {
			return cookie
		}
	}
	t.Fatal("login response did not set a session cookie")
	return nil
}

func TestHealthEndpointIntegration(t *testing.T) {
	router := setupIntegrationRouter(t)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Practice Tracker API is running", response["message"])
}

func TestLoginAndSubmitFlow(t *testing.T) {
	router := setupIntegrationRouter(t)
	seedIntegrationRoster(t)

	cookie := loginCookie(t, router, "1001", "correct-horse")

	// Anonymous submission is rejected.
	body, _ := json.Marshal(map[string]interface{}{})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/practice-records", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// With the session cookie the record lands in the log.
	body, _ = json.Marshal(map[string]interface{}{
		"trainer":        "Tanaka",
		"practice_date":  time.Now().AddDate(0, 0, -1).Format("2006-01-02"),
		"practice_hours": 2.0,
		"tech_category":  "Cutting",
		"tech_detail":    "Bob cut",
		"practice_count": 1,
		"evaluation":     6,
	})
	req, _ = http.NewRequest(http.MethodPost, "/api/v1/practice-records", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var rec models.PracticeRecord
	require.NoError(t, config.GetDB().First(&rec).Error)
	assert.Equal(t, "Sato", rec.StaffName)
	assert.Equal(t, "Shibuya", rec.Store)
}

func TestAdminGateIntegration(t *testing.T) {
	router := setupIntegrationRouter(t)
	seedIntegrationRoster(t)

	// A regular user is turned away from the admin surface.
	userCookie := loginCookie(t, router, "1001", "correct-horse")
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/admin/stores", nil)
	req.AddCookie(userCookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// The admin flag opens it.
	adminCookie := loginCookie(t, router, "9001", "admin-pass")
	body, _ := json.Marshal(map[string]string{"name": "Shibuya"})
	req, _ = http.NewRequest(http.MethodPost, "/api/v1/admin/stores", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(adminCookie)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req, _ = http.NewRequest(http.MethodGet, "/api/v1/admin/stores", nil)
	req.AddCookie(adminCookie)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "Shibuya", data[0])
}

func TestLogoutIntegration(t *testing.T) {
	router := setupIntegrationRouter(t)
	seedIntegrationRoster(t)

	cookie := loginCookie(t, router, "1001", "correct-horse")

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// The old cookie no longer resolves to a session.
	req, _ = http.NewRequest(http.MethodGet, "/api/v1/auth/session", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Nil(t, response["data"])
}
