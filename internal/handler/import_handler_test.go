package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/dutyhq/roster-api/internal/dto"
)

type importServiceMock struct {
	summary *dto.ImportSummary
	err     error
	read    string
}

func (m *importServiceMock) ImportCSV(ctx context.Context, r io.Reader) (*dto.ImportSummary, error) {
	payload, _ := io.ReadAll(r)
	m.read = string(payload)
	return m.summary, m.err
}

func TestImportHandlerRawBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &importServiceMock{summary: &dto.ImportSummary{RowsSeen: 1, RowsApplied: 1}}
	h := &ImportHandler{service: mockSvc}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := []byte("email,preferred\nalice@example.com,2025-03-10\n")
	req, _ := http.NewRequest(http.MethodPost, "/roster/preferences/import", bytes.NewReader(body))
	req.Header.Set("Content-Type", "text/csv")
	c.Request = req

	h.ImportPreferences(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, mockSvc.read, "alice@example.com")
	require.Contains(t, w.Body.String(), "rowsApplied")
}

func TestImportHandlerMultipart(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &importServiceMock{summary: &dto.ImportSummary{RowsSeen: 1}}
	h := &ImportHandler{service: mockSvc}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "prefs.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte("email,unavailable\nbob@example.com,2025-03-15\n"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/roster/preferences/import", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.Request = req

	h.ImportPreferences(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, mockSvc.read, "bob@example.com")
}

func TestImportHandlerMultipartMissingFile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &ImportHandler{service: &importServiceMock{}}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("note", "no file here"))
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/roster/preferences/import", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.Request = req

	h.ImportPreferences(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
