package handler

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/buildsafe/compliance-doc-service/config"
	"github.com/buildsafe/compliance-doc-service/dto"
	"github.com/buildsafe/compliance-doc-service/service"
)

type ComplianceHandler struct {
	complianceService *service.ComplianceService
	cfg               *config.Config
	log               zerolog.Logger
}

func NewComplianceHandler(complianceService *service.ComplianceService, cfg *config.Config, log zerolog.Logger) *ComplianceHandler {
	return &ComplianceHandler{
		complianceService: complianceService,
		cfg:               cfg,
		log:               log,
	}
}

// CheckDocs handles the POST /check-docs endpoint
func (h *ComplianceHandler) CheckDocs(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to parse multipart form", err)
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		h.sendError(c, http.StatusBadRequest, "No files provided", nil)
		return
	}
	if len(files) > h.cfg.MaxFilesPerRequest {
		h.sendError(c, http.StatusBadRequest,
			fmt.Sprintf("Too many files: maximum %d per request", h.cfg.MaxFilesPerRequest), nil)
		return
	}

	for _, fileHeader := range files {
		if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".pdf") {
			h.sendError(c, http.StatusBadRequest,
				fmt.Sprintf("Unsupported file type: %s (only PDF is accepted)", fileHeader.Filename), nil)
			return
		}
		if fileHeader.Size > h.cfg.MaxFileSize {
			h.sendError(c, http.StatusBadRequest,
				fmt.Sprintf("File too large: %s (maximum %d bytes)", fileHeader.Filename, h.cfg.MaxFileSize), nil)
			return
		}
	}

	h.log.Info().Int("files", len(files)).Msg("processing compliance check request")

	results := h.complianceService.CheckDocuments(files)

	c.JSON(http.StatusOK, dto.CheckResponse{Results: results})
}

// sendError sends a structured error response
func (h *ComplianceHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	if err != nil {
		h.log.Error().Err(err).Msg(message)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "DOCUMENT_CHECK_FAILED",
		Message: message,
		Code:    statusCode,
	})
}
