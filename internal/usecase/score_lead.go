package usecase

import (
	"context"
	"log"
	"time"

	"github.com/ideas26/leadflow-api/internal/entity"
	"github.com/ideas26/leadflow-api/internal/infra/queue"
)

// ScoreLeadUseCase applies the scoring pipeline's callback. It is the only
// writer of fit_score, fit_band, use_case_label and rationale; nothing
// else in the service touches those columns.
type ScoreLeadUseCase struct {
	Repo   LeadRepositoryInterface
	Events queue.LeadEventPublisherInterface
}

func NewScoreLeadUseCase(repo LeadRepositoryInterface, events queue.LeadEventPublisherInterface) *ScoreLeadUseCase {
	return &ScoreLeadUseCase{
		Repo:   repo,
		Events: events,
	}
}

func (uc *ScoreLeadUseCase) Execute(ctx context.Context, input ScoreLeadInput) error {
	if input.LeadID == "" {
		return &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: "lead_id is required",
		}
	}
	if input.FitBand != "" && !entity.IsValidFitBand(input.FitBand) {
		return &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: "unknown fit band: " + input.FitBand,
		}
	}
	if input.UseCaseLabel != "" && !entity.IsValidUseCaseLabel(input.UseCaseLabel) {
		return &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: "unknown use case label: " + input.UseCaseLabel,
		}
	}

	err := uc.Repo.UpdateScoring(ctx, input.LeadID, input.FitScore, input.FitBand, input.UseCaseLabel, input.Rationale)
	if err != nil {
		return err
	}

	event := queue.LeadEvent{
		Event:      queue.EventLeadScored,
		LeadID:     input.LeadID,
		OccurredAt: time.Now(),
	}
	if err := uc.Events.PublishLeadEvent(ctx, event); err != nil {
		log.Printf("⚠️ failed to publish lead.scored for %s: %v", input.LeadID, err)
	}

	return nil
}
