package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"datasieve/internal/service"
)

// ValidationHandler handles dataset validation endpoints.
type ValidationHandler struct {
	validationService service.ValidationService
}

// NewValidationHandler creates a new ValidationHandler.
func NewValidationHandler(validationService service.ValidationService) *ValidationHandler {
	return &ValidationHandler{validationService: validationService}
}

// Validate handles POST /api/v1/validate. It accepts a multipart CSV or
// XLSX upload plus an "industry" form field selecting the starting schema.
func (h *ValidationHandler) Validate(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	industry := c.PostForm("industry")
	if industry == "" {
		RespondError(c, http.StatusBadRequest, "MISSING_INDUSTRY", "industry field is required")
		return
	}

	run, err := h.validationService.ValidateUpload(file, header.Filename, industry)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, run)
}

// GetRun handles GET /api/v1/validations/:id
func (h *ValidationHandler) GetRun(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "run id must be a UUID")
		return
	}

	run, err := h.validationService.GetRun(id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, run)
}

// ExportReport handles GET /api/v1/validations/:id/report and streams the
// findings as a CSV download.
func (h *ValidationHandler) ExportReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "run id must be a UUID")
		return
	}

	// Resolve the run before touching response headers so a missing run
	// still gets a clean JSON error.
	if _, err := h.validationService.GetRun(id); err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "validation-report-"+id.String()+".csv"))

	if _, err := h.validationService.ExportReport(id, c.Writer); err != nil {
		HandleError(c, err)
		return
	}
}

// ListSchemas handles GET /api/v1/schemas
func (h *ValidationHandler) ListSchemas(c *gin.Context) {
	RespondOK(c, h.validationService.Schemas())
}
