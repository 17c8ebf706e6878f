package controllers

import (
	"bytes"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/QUARTER-salon/practice-tracker/models"
)

func seedReportRecords(t *testing.T, db *gorm.DB) {
	t.Helper()
	records := []models.PracticeRecord{
		{RecordedAt: time.Now(), Store: "Shibuya", Role: "Stylist", StaffName: "Sato", EmployeeID: "1001",
			Trainer: "Tanaka", PracticeDate: "2026-08-01", PracticeHours: 1.5, TechCategory: "Cutting",
			TechDetail: "Bob cut", PracticeCount: 2, Evaluation: 7, AppVersion: models.AppVersion},
		{RecordedAt: time.Now(), Store: "Ginza", Role: "Assistant", StaffName: "Ito", EmployeeID: "1002",
			Trainer: "Suzuki", PracticeDate: "2026-08-10", PracticeHours: 2, TechCategory: "Shampoo",
			TechDetail: "Scalp massage", PracticeCount: 1, Evaluation: 5, AppVersion: models.AppVersion},
	}
	for i := range records {
		require.NoError(t, db.Create(&records[i]).Error)
	}
}

func newReportTestRouter(t *testing.T) (*controllerTestEnv, *gin.Engine) {
	t.Helper()
	env := newControllerTestEnv(t)
	rc := NewReportController(env.report, env.export)

	router := gin.New()
	router.GET("/admin/practice-records", rc.Records)
	router.GET("/admin/practice-records/export", rc.Export)
	return env, router
}

func TestReportRecordsEndpoint(t *testing.T) {
	env, router := newReportTestRouter(t)
	seedReportRecords(t, env.db)

	w := performJSON(t, router, http.MethodGet, "/admin/practice-records", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := parseEnvelope(t, w)["data"].([]interface{})
	assert.Len(t, data, 2)

	w = performJSON(t, router, http.MethodGet, "/admin/practice-records?store=Shibuya", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data = parseEnvelope(t, w)["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "Sato", data[0].(map[string]interface{})["staff_name"])

	w = performJSON(t, router, http.MethodGet, "/admin/practice-records?start_date=bad&end_date=2026-08-10", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReportExportEndpoint(t *testing.T) {
	env, router := newReportTestRouter(t)
	seedReportRecords(t, env.db)

	w := performJSON(t, router, http.MethodGet, "/admin/practice-records/export?store=Ginza", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("PracticeRecords")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Ito", rows[1][3])
}
