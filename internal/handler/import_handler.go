package handler

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dutyhq/roster-api/internal/dto"
	"github.com/dutyhq/roster-api/internal/service"
	appErrors "github.com/dutyhq/roster-api/pkg/errors"
	"github.com/dutyhq/roster-api/pkg/response"
)

type preferenceImporter interface {
	ImportCSV(ctx context.Context, r io.Reader) (*dto.ImportSummary, error)
}

// ImportHandler accepts preference CSV uploads, either as a multipart file
// field named "file" or as a raw request body.
type ImportHandler struct {
	service preferenceImporter
}

// NewImportHandler constructs the handler.
func NewImportHandler(svc *service.ImportService) *ImportHandler {
	return &ImportHandler{service: svc}
}

// ImportPreferences godoc
// @Summary Import date preferences from a CSV file
// @Description Columns are sniffed from the header. Rows with unknown emails or bad dates become warnings, not failures.
// @Tags Roster
// @Accept mpfd
// @Produce json
// @Param file formData file false "Preference CSV"
// @Success 200 {object} response.Envelope
// @Router /roster/preferences/import [post]
func (h *ImportHandler) ImportPreferences(c *gin.Context) {
	reader, cleanup, err := importBody(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer cleanup()

	summary, err := h.service.ImportCSV(c.Request.Context(), reader)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary, nil)
}

func importBody(c *gin.Context) (io.Reader, func(), error) {
	contentType := c.GetHeader("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return nil, nil, appErrors.Clone(appErrors.ErrValidation, "multipart field 'file' is required")
		}
		file, err := fileHeader.Open()
		if err != nil {
			return nil, nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "failed to open uploaded file")
		}
		return file, func() { _ = file.Close() }, nil
	}
	if c.Request.Body == nil {
		return nil, nil, appErrors.Clone(appErrors.ErrValidation, "request body is required")
	}
	return c.Request.Body, func() {}, nil
}
