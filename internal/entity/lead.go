package entity

import (
	"time"
)

const (
	StatusNew          = "new"
	StatusOutreachSent = "outreach_sent"
)

// FilterAll is the sentinel a dashboard filter takes when no constraint applies.
const FilterAll = "All"

var FitBands = []string{"High", "Medium", "Low"}

var UseCaseLabels = []string{
	"Internal automation",
	"Customer support",
	"Data processing",
	"Sales ops",
	"Other",
}

type Lead struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Company      string    `json:"company,omitempty"`
	Website      string    `json:"website,omitempty"`
	ProblemText  string    `json:"problem_text"`
	FitScore     *float64  `json:"fit_score,omitempty"`
	FitBand      string    `json:"fit_band,omitempty"`
	UseCaseLabel string    `json:"use_case_label,omitempty"`
	Rationale    string    `json:"rationale,omitempty"`
	Status       string    `json:"status"`
}

// LeadSummary is the projection listed on the dashboard table.
type LeadSummary struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Name         string    `json:"name"`
	Company      string    `json:"company,omitempty"`
	FitScore     *float64  `json:"fit_score,omitempty"`
	FitBand      string    `json:"fit_band,omitempty"`
	UseCaseLabel string    `json:"use_case_label,omitempty"`
	Status       string    `json:"status"`
}

// LeadFilter carries the two dashboard filters. Empty string or FilterAll
// means no constraint on that column.
type LeadFilter struct {
	FitBand      string
	UseCaseLabel string
}

func IsValidFitBand(band string) bool {
	for _, b := range FitBands {
		if b == band {
			return true
		}
	}
	return false
}

func IsValidUseCaseLabel(label string) bool {
	for _, l := range UseCaseLabels {
		if l == label {
			return true
		}
	}
	return false
}
