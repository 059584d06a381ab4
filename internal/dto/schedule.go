package dto

import "github.com/dutyhq/roster-api/internal/models"

// ScheduleConfigRequest updates shift counts and the scheduling window.
// Counts are clamped to [0,10] by the engine.
type ScheduleConfigRequest struct {
	PrimaryPerDay   int    `json:"primaryPerDay" validate:"min=0"`
	SecondaryPerDay int    `json:"secondaryPerDay" validate:"min=0"`
	StartDate       string `json:"startDate" validate:"required"`
	EndDate         string `json:"endDate" validate:"required"`
}

// ScheduleConfigResponse echoes the effective configuration.
type ScheduleConfigResponse struct {
	PrimaryPerDay   int    `json:"primaryPerDay"`
	SecondaryPerDay int    `json:"secondaryPerDay"`
	StartDate       string `json:"startDate,omitempty"`
	EndDate         string `json:"endDate,omitempty"`
	Headcount       int    `json:"headcount"`
}

// GenerateResponse wraps a completed scheduling run.
type GenerateResponse struct {
	RunID          string                `json:"runId"`
	Schedule       []models.DutySlot     `json:"schedule"`
	FairnessReport models.FairnessReport `json:"fairnessReport"`
}
