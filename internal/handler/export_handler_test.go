package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	appErrors "github.com/dutyhq/roster-api/pkg/errors"
)

type exportServiceMock struct {
	payload  []byte
	err      error
	lastTeam string
}

func (m *exportServiceMock) ScheduleCSV(ctx context.Context, runID string) ([]byte, error) {
	return m.payload, m.err
}

func (m *exportServiceMock) SchedulePDF(ctx context.Context, runID string) ([]byte, error) {
	return m.payload, m.err
}

func (m *exportServiceMock) WhenToWork(ctx context.Context, runID, teamName string) ([]byte, error) {
	m.lastTeam = teamName
	return m.payload, m.err
}

func TestExportHandlerCSV(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &ExportHandler{service: &exportServiceMock{payload: []byte("Date,Role\n")}}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "run-1"}}
	req, _ := http.NewRequest(http.MethodGet, "/schedule/runs/run-1/export/csv", nil)
	c.Request = req

	h.CSV(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	require.Contains(t, w.Header().Get("Content-Disposition"), "schedule-run-1.csv")
}

func TestExportHandlerCSVNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &ExportHandler{service: &exportServiceMock{err: appErrors.ErrNotFound}}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "nope"}}
	req, _ := http.NewRequest(http.MethodGet, "/schedule/runs/nope/export/csv", nil)
	c.Request = req

	h.CSV(c)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestExportHandlerWhenToWorkPassesTeam(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &exportServiceMock{payload: []byte("Team\n")}
	h := &ExportHandler{service: mockSvc}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "run-1"}}
	req, _ := http.NewRequest(http.MethodGet, "/schedule/runs/run-1/export/whentowork?team=Night+Watch", nil)
	c.Request = req

	h.WhenToWork(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Night Watch", mockSvc.lastTeam)
}

func TestExportHandlerPDF(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &ExportHandler{service: &exportServiceMock{payload: []byte("%PDF-1.4")}}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "run-1"}}
	req, _ := http.NewRequest(http.MethodGet, "/schedule/runs/run-1/export/pdf", nil)
	c.Request = req

	h.PDF(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
}
