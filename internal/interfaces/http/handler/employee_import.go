package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	employeeapp "github.com/staffdir/backend/internal/application/employee"
	"github.com/staffdir/backend/internal/infrastructure/config"
	"github.com/staffdir/backend/internal/infrastructure/csvio"
	"github.com/staffdir/backend/internal/interfaces/http/dto"
)

// acceptedCSVContentTypes lists upload content types treated as CSV.
// Browsers and Excel disagree on what a .csv is.
var acceptedCSVContentTypes = map[string]bool{
	"":                         true,
	"text/csv":                 true,
	"text/plain":               true,
	"application/octet-stream": true,
	"application/vnd.ms-excel": true,
}

// EmployeeImportHandler handles the bulk CSV import, export and template
// endpoints
type EmployeeImportHandler struct {
	BaseHandler
	importService *employeeapp.ImportService
	exportService *employeeapp.ExportService
	cfg           config.ImportConfig
	logger        *zap.Logger
}

// NewEmployeeImportHandler creates a new EmployeeImportHandler
func NewEmployeeImportHandler(
	importService *employeeapp.ImportService,
	exportService *employeeapp.ExportService,
	cfg config.ImportConfig,
	logger *zap.Logger,
) *EmployeeImportHandler {
	return &EmployeeImportHandler{
		importService: importService,
		exportService: exportService,
		cfg:           cfg,
		logger:        logger,
	}
}

// Import accepts a CSV upload and imports its rows. Row-level failures do
// not fail the request; the summary reports them per row.
func (h *EmployeeImportHandler) Import(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		h.BadRequest(c, "file is required")
		return
	}
	defer file.Close()

	if header.Size > h.cfg.MaxFileSize {
		h.Error(c, http.StatusRequestEntityTooLarge, dto.ErrCodeTooLarge,
			fmt.Sprintf("file exceeds maximum size of %d bytes", h.cfg.MaxFileSize))
		return
	}
	if !acceptedCSVContentTypes[header.Header.Get("Content-Type")] {
		h.Error(c, http.StatusUnsupportedMediaType, dto.ErrCodeBadRequest, "file must be a CSV file")
		return
	}

	summary, err := h.importService.RunImport(c.Request.Context(), file)
	if err != nil {
		h.handleImportError(c, err)
		return
	}

	h.logger.Info("employee import finished",
		zap.String("filename", header.Filename),
		zap.Int("total_rows", summary.TotalRows),
		zap.Int("success_count", summary.SuccessCount),
		zap.Int("error_count", summary.ErrorCount))

	h.Success(c, summary)
}

// handleImportError maps whole-file failures onto client or server errors
func (h *EmployeeImportHandler) handleImportError(c *gin.Context, err error) {
	if !employeeapp.IsFileError(err) {
		h.logger.Error("employee import failed", zap.Error(err))
		h.InternalError(c, "failed to process file")
		return
	}

	var headerErr *csvio.HeaderError
	switch {
	case errors.Is(err, csvio.ErrEmptyFile):
		h.Error(c, http.StatusBadRequest, dto.ErrCodeImportEmptyFile, "CSV file contains no data rows")
	case errors.Is(err, csvio.ErrInvalidEncoding):
		h.Error(c, http.StatusBadRequest, dto.ErrCodeImportBadEncoding, "CSV file must be UTF-8 or Shift_JIS encoded")
	case errors.Is(err, csvio.ErrMissingHeader):
		h.Error(c, http.StatusBadRequest, dto.ErrCodeImportMissingHeader, "CSV file is missing its header row")
	case errors.As(err, &headerErr):
		h.Error(c, http.StatusBadRequest, dto.ErrCodeImportMissingHeader, headerErr.Error())
	case errors.Is(err, csvio.ErrMalformedCSV):
		h.Error(c, http.StatusBadRequest, dto.ErrCodeImportMalformedCSV, "CSV file is malformed")
	default:
		h.HandleError(c, err)
	}
}

// Export streams the matching employees as a CSV download. The file is
// buffered first so a failure mid-query never produces a partial download.
func (h *EmployeeImportHandler) Export(c *gin.Context) {
	var req dto.ListEmployeesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	var buf bytes.Buffer
	if err := h.exportService.RunExport(c.Request.Context(), buildEmployeeFilter(req), &buf); err != nil {
		h.logger.Error("employee export failed", zap.Error(err))
		h.HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("employees_%s.csv", time.Now().Format("20060102_150405"))
	sendCSV(c, filename, buf.Bytes())
}

// Template serves the import template CSV with sample rows
func (h *EmployeeImportHandler) Template(c *gin.Context) {
	data, err := employeeapp.Template()
	if err != nil {
		h.InternalError(c, "failed to build template")
		return
	}
	sendCSV(c, "employee_import_template.csv", data)
}

func sendCSV(c *gin.Context, filename string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
