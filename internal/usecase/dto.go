package usecase

import "time"

type CaptureLeadInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Company     string `json:"company"`
	Website     string `json:"website"`
	ProblemText string `json:"problem_text"`
}

type CaptureLeadOutput struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginOutput struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      UserInfo  `json:"user"`
}

type UserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// ScoreLeadInput is what the scoring workflow posts back once it has
// classified a submission.
type ScoreLeadInput struct {
	LeadID       string   `json:"lead_id"`
	FitScore     *float64 `json:"fit_score"`
	FitBand      string   `json:"fit_band"`
	UseCaseLabel string   `json:"use_case_label"`
	Rationale    string   `json:"rationale"`
}

type StatsOutput struct {
	TotalLeads int            `json:"total_leads"`
	BandStats  map[string]int `json:"band_stats"`
	LabelStats map[string]int `json:"label_stats"`
}
