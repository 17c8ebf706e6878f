package controllers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/QUARTER-salon/practice-tracker/models"
)

func uploadWorkbook(t *testing.T, router *gin.Engine, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, "/admin/import", &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func buildImportWorkbookBytes(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	_, err := f.NewSheet("Stores")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Stores", "A1", &[]interface{}{"name"}))
	require.NoError(t, f.SetSheetRow("Stores", "A2", &[]interface{}{"Shibuya"}))
	f.DeleteSheet("Sheet1")

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestImportEndpoint(t *testing.T) {
	env := newControllerTestEnv(t)
	ic := NewImportController(env.importer)
	router := gin.New()
	router.POST("/admin/import", ic.Import)

	w := uploadWorkbook(t, router, "legacy.xlsx", buildImportWorkbookBytes(t))
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response["success"].(bool))
	assert.Equal(t, "legacy data imported", response["message"])

	counts := response["data"].(map[string]interface{})
	assert.Equal(t, float64(1), counts["stores"])

	var store models.Store
	require.NoError(t, env.db.Where("name = ?", "Shibuya").First(&store).Error)
}

func TestImportEndpointRejectsWrongExtension(t *testing.T) {
	env := newControllerTestEnv(t)
	ic := NewImportController(env.importer)
	router := gin.New()
	router.POST("/admin/import", ic.Import)

	w := uploadWorkbook(t, router, "legacy.csv", []byte("a,b,c"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestImportEndpointRequiresFile(t *testing.T) {
	env := newControllerTestEnv(t)
	ic := NewImportController(env.importer)
	router := gin.New()
	router.POST("/admin/import", ic.Import)

	w := performJSON(t, router, http.MethodPost, "/admin/import", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestImportEndpointRejectsCorruptWorkbook(t *testing.T) {
	env := newControllerTestEnv(t)
	ic := NewImportController(env.importer)
	router := gin.New()
	router.POST("/admin/import", ic.Import)

	w := uploadWorkbook(t, router, "legacy.xlsx", []byte("not a workbook"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
