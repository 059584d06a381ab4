package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/dutyhq/roster-api/internal/dto"
	"github.com/dutyhq/roster-api/internal/models"
	appErrors "github.com/dutyhq/roster-api/pkg/errors"
)

type preferenceWriter interface {
	People(ctx context.Context) []models.Person
	SetPreferences(ctx context.Context, email string, req dto.PreferencesRequest) error
}

// ImportService parses preference CSVs and forwards rows into the roster.
// Column roles are sniffed from the header: a column containing "email"
// keys the row, "unavail"/"not"/"cannot" marks unavailable dates, "prefer"
// marks preferred dates. Bad rows become warnings, never batch failures.
type ImportService struct {
	roster preferenceWriter
	logger *zap.Logger
}

// NewImportService constructs the service.
func NewImportService(roster preferenceWriter, logger *zap.Logger) *ImportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImportService{roster: roster, logger: logger}
}

// ImportCSV reads preference rows and applies them per person. Unknown
// emails are reported, not fatal.
func (s *ImportService) ImportCSV(ctx context.Context, r io.Reader) (*dto.ImportSummary, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "failed to read csv header")
	}
	emailCol, preferCol, unavailCol := sniffColumns(header)
	if emailCol < 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "csv header has no email column")
	}

	known := make(map[string]bool)
	for _, p := range s.roster.People(ctx) {
		known[p.Email] = true
	}

	summary := &dto.ImportSummary{}
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			summary.Warnings = append(summary.Warnings, fmt.Sprintf("row %d: %v", line, err))
			continue
		}
		summary.RowsSeen++

		if emailCol >= len(record) {
			summary.Warnings = append(summary.Warnings, fmt.Sprintf("row %d: missing email cell", line))
			continue
		}
		email := strings.ToLower(strings.TrimSpace(record[emailCol]))
		if email == "" {
			summary.Warnings = append(summary.Warnings, fmt.Sprintf("row %d: empty email", line))
			continue
		}
		if !known[email] {
			summary.Warnings = append(summary.Warnings, fmt.Sprintf("row %d: unknown email %s", line, email))
			continue
		}

		req := dto.PreferencesRequest{
			PreferredDates:    cellDates(record, preferCol),
			NotPreferredDates: cellDates(record, unavailCol),
		}
		if err := s.roster.SetPreferences(ctx, email, req); err != nil {
			summary.Warnings = append(summary.Warnings, fmt.Sprintf("row %d: %v", line, err))
			continue
		}
		summary.RowsApplied++
	}

	s.logger.Info("preference import finished",
		zap.Int("rows_seen", summary.RowsSeen),
		zap.Int("rows_applied", summary.RowsApplied),
		zap.Int("warnings", len(summary.Warnings)),
	)
	return summary, nil
}

// sniffColumns locates the email, preferred and unavailable columns by
// case-insensitive substring match. Unavailability keywords are checked
// before "prefer" so headers like "not preferred" land correctly.
func sniffColumns(header []string) (emailCol, preferCol, unavailCol int) {
	emailCol, preferCol, unavailCol = -1, -1, -1
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		switch {
		case strings.Contains(name, "email"):
			if emailCol < 0 {
				emailCol = i
			}
		case strings.Contains(name, "unavail"), strings.Contains(name, "cannot"), strings.Contains(name, "not"):
			if unavailCol < 0 {
				unavailCol = i
			}
		case strings.Contains(name, "prefer"):
			if preferCol < 0 {
				preferCol = i
			}
		}
	}
	return emailCol, preferCol, unavailCol
}

// cellDates splits a date cell on commas and semicolons.
func cellDates(record []string, col int) []string {
	if col < 0 || col >= len(record) {
		return nil
	}
	raw := strings.FieldsFunc(record[col], func(r rune) bool {
		return r == ',' || r == ';'
	})
	dates := make([]string, 0, len(raw))
	for _, part := range raw {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			dates = append(dates, trimmed)
		}
	}
	return dates
}
