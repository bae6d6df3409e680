package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ideas26/leadflow-api/internal/infra/http/middleware"
	"github.com/ideas26/leadflow-api/internal/usecase"
)

// LeadHandler serves the public capture endpoint.
type LeadHandler struct {
	CaptureUseCase *usecase.CaptureLeadUseCase
}

func NewLeadHandler(captureUseCase *usecase.CaptureLeadUseCase) *LeadHandler {
	return &LeadHandler{CaptureUseCase: captureUseCase}
}

type captureErrorResponse struct {
	Error  string            `json:"error,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}

func (h *LeadHandler) CaptureLead(w http.ResponseWriter, r *http.Request) {
	var input usecase.CaptureLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, captureErrorResponse{Error: "invalid JSON"})
		return
	}

	output, err := h.CaptureUseCase.Execute(r.Context(), input)
	if err != nil {
		var domainErr *usecase.DomainError
		if errors.As(err, &domainErr) {
			writeJSON(w, http.StatusUnprocessableEntity, captureErrorResponse{Errors: domainErr.Fields})
			return
		}

		middleware.RecordIntegrationError("intake")
		writeJSON(w, http.StatusBadGateway, captureErrorResponse{Error: "submission failed, please try again"})
		return
	}

	middleware.RecordLeadCaptured()
	writeJSON(w, http.StatusCreated, output)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
