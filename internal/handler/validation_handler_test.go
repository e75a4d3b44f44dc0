package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datasieve/internal/config"
	"datasieve/internal/schema"
	"datasieve/internal/service"
)

func newTestRouter(t *testing.T) (*gin.Engine, service.ValidationService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := service.NewValidationService(schema.Builtin(), &config.EngineConfig{
		MaxRows: 1000,
		MaxRuns: 100,
	})
	h := NewValidationHandler(svc)

	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.POST("/validate", h.Validate)
	v1.GET("/validations/:id", h.GetRun)
	v1.GET("/validations/:id/report", h.ExportReport)
	v1.GET("/schemas", h.ListSchemas)
	return r, svc
}

func multipartUpload(t *testing.T, filename, content, industry string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	if industry != "" {
		require.NoError(t, mw.WriteField("industry", industry))
	}
	require.NoError(t, mw.Close())
	return &body, mw.FormDataContentType()
}

const rosterCSV = "Doctor_ID,Doctor_Name,Specialization,Department,Shift,Start_Time,End_Time,Date\n" +
	"D001,Asha Rao,Cardiology,OPD,Morning,08:00,14:00,2024-03-01\n"

func TestValidate(t *testing.T) {
	r, _ := newTestRouter(t)
	body, contentType := multipartUpload(t, "roster.csv", rosterCSV, "doctor_roster")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/validate", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "roster.csv", data["filename"])
	assert.Equal(t, "doctor_roster", data["industry"])
	result, ok := data["result"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, result["is_valid"])
}

func TestValidate_MissingFile(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/validate", strings.NewReader("industry=others"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "MISSING_FILE")
}

func TestValidate_MissingIndustry(t *testing.T) {
	r, _ := newTestRouter(t)
	body, contentType := multipartUpload(t, "roster.csv", rosterCSV, "")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/validate", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "MISSING_INDUSTRY")
}

func TestValidate_UnsupportedFileType(t *testing.T) {
	r, _ := newTestRouter(t)
	body, contentType := multipartUpload(t, "notes.txt", "hello", "others")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/validate", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "UNSUPPORTED_FILE_TYPE")
}

func TestGetRun(t *testing.T) {
	r, svc := newTestRouter(t)
	run, err := svc.ValidateUpload(strings.NewReader(rosterCSV), "roster.csv", "doctor_roster")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/validations/"+run.ID.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), run.ID.String())
}

func TestGetRun_BadID(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/validations/not-a-uuid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_ID")
}

func TestGetRun_NotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/validations/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "RUN_NOT_FOUND")
}

func TestExportReport(t *testing.T) {
	r, svc := newTestRouter(t)
	run, err := svc.ValidateUpload(strings.NewReader(rosterCSV), "roster.csv", "doctor_roster")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/validations/"+run.ID.String()+"/report", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "validation-report-"+run.ID.String())
	assert.Contains(t, w.Body.String(), "Type,Severity,Field,Column,Row,Message")
}

func TestExportReport_NotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/validations/"+uuid.NewString()+"/report", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
}

func TestListSchemas(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/schemas", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "doctor_roster")
	assert.Contains(t, w.Body.String(), "pharmacy_inventory")
}
