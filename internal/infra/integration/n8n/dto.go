package n8n

// IntakePayload is the body posted to the intake workflow. Optional fields
// serialize as empty strings, never null.
type IntakePayload struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Company     string `json:"company"`
	Website     string `json:"website"`
	ProblemText string `json:"problem_text"`
}

type OutreachPayload struct {
	LeadID string `json:"lead_id"`
}
