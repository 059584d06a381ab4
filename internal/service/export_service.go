package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/dutyhq/roster-api/internal/models"
	"github.com/dutyhq/roster-api/internal/scheduler"
	"github.com/dutyhq/roster-api/pkg/export"
	"github.com/dutyhq/roster-api/pkg/jobs"
)

type runProvider interface {
	Run(ctx context.Context, id string) (*models.ScheduleRun, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type exportArchiver interface {
	Enqueue(job jobs.ArchiveJob) error
}

// ExportConfig carries export defaults.
type ExportConfig struct {
	DefaultTeamName string
}

// ExportService serializes stored schedule runs into flat tabular formats.
// Unassigned slots are rendered with a sentinel rather than omitted.
type ExportService struct {
	runs    runProvider
	csv     csvRenderer
	pdf     pdfRenderer
	archive exportArchiver
	cfg     ExportConfig
	logger  *zap.Logger
}

// NewExportService constructs an ExportService. archive may be nil, in
// which case rendered exports are served without an archive copy.
func NewExportService(runs runProvider, csv csvRenderer, pdf pdfRenderer, archive exportArchiver, cfg ExportConfig, logger *zap.Logger) *ExportService {
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.DefaultTeamName == "" {
		cfg.DefaultTeamName = "Duty Roster"
	}
	return &ExportService{runs: runs, csv: csv, pdf: pdf, archive: archive, cfg: cfg, logger: logger}
}

// ScheduleCSV renders a run as CSV.
func (s *ExportService) ScheduleCSV(ctx context.Context, runID string) ([]byte, error) {
	run, err := s.runs.Run(ctx, runID)
	if err != nil {
		return nil, err
	}
	payload, err := s.csv.Render(scheduleDataset(run))
	if err != nil {
		return nil, err
	}
	s.archiveCopy(runID, "schedule.csv", payload)
	return payload, nil
}

// SchedulePDF renders a run as a tabular PDF.
func (s *ExportService) SchedulePDF(ctx context.Context, runID string) ([]byte, error) {
	run, err := s.runs.Run(ctx, runID)
	if err != nil {
		return nil, err
	}
	data := scheduleDataset(run)
	data.Title = fmt.Sprintf("Duty schedule %s to %s", run.StartDate, run.EndDate)
	payload, err := s.pdf.Render(data)
	if err != nil {
		return nil, err
	}
	s.archiveCopy(runID, "schedule.pdf", payload)
	return payload, nil
}

// WhenToWork renders a run in the flat layout the WhenToWork importer
// expects, one row per slot.
func (s *ExportService) WhenToWork(ctx context.Context, runID, teamName string) ([]byte, error) {
	run, err := s.runs.Run(ctx, runID)
	if err != nil {
		return nil, err
	}
	if teamName == "" {
		teamName = s.cfg.DefaultTeamName
	}

	headers := []string{"Team", "Position", "Assignee", "Date", "Start Time", "End Time"}
	rows := make([][]string, 0, len(run.Schedule))
	for i := range run.Schedule {
		slot := &run.Schedule[i]
		endTime := "8:00 AM"
		if slot.DurationHours == 24 {
			endTime = "8:00 PM"
		}
		rows = append(rows, []string{
			teamName,
			fmt.Sprintf("%s %s", capitalize(string(slot.Role)), strings.ToUpper(slot.Label)),
			assigneeOrSentinel(slot),
			slot.Date,
			"8:00 PM",
			endTime,
		})
	}
	payload, err := s.csv.Render(export.Dataset{Headers: headers, Rows: rows})
	if err != nil {
		return nil, err
	}
	s.archiveCopy(runID, "whentowork.csv", payload)
	return payload, nil
}

// archiveCopy hands a rendered export to the background archive queue.
// Archive failures never fail the download.
func (s *ExportService) archiveCopy(runID, filename string, payload []byte) {
	if s.archive == nil {
		return
	}
	err := s.archive.Enqueue(jobs.ArchiveJob{RunID: runID, Filename: filename, Payload: payload})
	if err != nil {
		s.logger.Warn("failed to enqueue export archive copy",
			zap.String("run_id", runID),
			zap.String("file", filename),
			zap.Error(err),
		)
	}
}

func scheduleDataset(run *models.ScheduleRun) export.Dataset {
	headers := []string{"Date", "Day", "Role", "Slot", "Hours", "Assignee", "Coverage Override"}
	rows := make([][]string, 0, len(run.Schedule))
	for i := range run.Schedule {
		slot := &run.Schedule[i]
		day := ""
		if parsed, err := scheduler.ParseDay(slot.Date); err == nil {
			day = parsed.Weekday().String()
		}
		override := ""
		if slot.CoverageOverride {
			override = "yes"
		}
		rows = append(rows, []string{
			slot.Date,
			day,
			string(slot.Role),
			slot.Label,
			fmt.Sprintf("%d", slot.DurationHours),
			assigneeOrSentinel(slot),
			override,
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}

func assigneeOrSentinel(slot *models.DutySlot) string {
	if slot.Assignee == "" {
		return scheduler.UnassignedSentinel
	}
	return slot.Assignee
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
