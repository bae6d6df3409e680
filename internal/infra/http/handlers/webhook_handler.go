package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/ideas26/leadflow-api/internal/entity"
	"github.com/ideas26/leadflow-api/internal/infra/http/middleware"
	"github.com/ideas26/leadflow-api/internal/usecase"
)

// ScoringWebhookHandler receives the scoring pipeline's callback and is
// the single write path for the fit_* columns.
type ScoringWebhookHandler struct {
	ScoreUseCase *usecase.ScoreLeadUseCase
	SharedToken  string
}

func NewScoringWebhookHandler(scoreUseCase *usecase.ScoreLeadUseCase, sharedToken string) *ScoringWebhookHandler {
	return &ScoringWebhookHandler{
		ScoreUseCase: scoreUseCase,
		SharedToken:  sharedToken,
	}
}

func (h *ScoringWebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if h.SharedToken != "" && r.Header.Get("X-Webhook-Token") != h.SharedToken {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var input usecase.ScoreLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Bad JSON", http.StatusBadRequest)
		return
	}

	err := h.ScoreUseCase.Execute(r.Context(), input)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			// Ack unknown leads so the pipeline does not retry forever.
			log.Printf("scoring callback for unknown lead %s", input.LeadID)
			w.WriteHeader(http.StatusOK)
			return
		}
		if usecase.IsDomainError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("scoring callback failed for %s: %v", input.LeadID, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	middleware.RecordLeadScored(input.FitBand)
	w.WriteHeader(http.StatusOK)
}
