package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/QUARTER-salon/practice-tracker/models"
)

func newPageTestRouter(t *testing.T, staff *models.Staff) (*controllerTestEnv, *gin.Engine) {
	t.Helper()
	env := newControllerTestEnv(t)
	pc := NewPageController(env.auth)

	router := gin.New()
	router.LoadHTMLGlob("../templates/*")
	router.Use(mockSessionMiddleware(staff, "session-1"))
	router.GET("/", pc.Render)
	return env, router
}

func TestRenderIndexByDefault(t *testing.T) {
	_, router := newPageTestRouter(t, nil)

	w := performJSON(t, router, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Log in")
}

func TestRenderAppNeedsSession(t *testing.T) {
	_, router := newPageTestRouter(t, nil)

	// Anonymous callers land back on index with the reason shown.
	w := performJSON(t, router, http.MethodGet, "/?page=app", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "login is required")
}

func TestRenderAppWithSession(t *testing.T) {
	staff := &models.Staff{EmployeeID: "1001", Email: "sato@example.com", Name: "Sato", Store: "Shibuya", Role: "Stylist"}
	_, router := newPageTestRouter(t, staff)

	w := performJSON(t, router, http.MethodGet, "/?page=app", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Practice Record")
	assert.Contains(t, w.Body.String(), "Sato")
}

func TestRenderAdminNeedsAdminFlag(t *testing.T) {
	staff := &models.Staff{EmployeeID: "1001", Email: "sato@example.com", Name: "Sato"}
	env, router := newPageTestRouter(t, staff)
	seedRosterStaff(t, env.db, *staff, "")

	w := performJSON(t, router, http.MethodGet, "/?page=admin", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "administrator privileges are required")
}

func TestRenderAdminWithAdminFlag(t *testing.T) {
	staff := &models.Staff{EmployeeID: "1001", Email: "admin@example.com", Name: "Admin", AdminFlag: "TRUE"}
	env, router := newPageTestRouter(t, staff)
	seedRosterStaff(t, env.db, *staff, "")

	w := performJSON(t, router, http.MethodGet, "/?page=admin", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Administration")
}
