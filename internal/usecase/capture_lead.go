package usecase

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/ideas26/leadflow-api/internal/entity"
	"github.com/ideas26/leadflow-api/internal/infra/integration/n8n"
	"github.com/ideas26/leadflow-api/internal/infra/queue"
)

type CaptureLeadUseCase struct {
	Repo    LeadRepositoryInterface
	Gateway AutomationGateway
	Events  queue.LeadEventPublisherInterface
}

func NewCaptureLeadUseCase(
	repo LeadRepositoryInterface,
	gateway AutomationGateway,
	events queue.LeadEventPublisherInterface,
) *CaptureLeadUseCase {
	return &CaptureLeadUseCase{
		Repo:    repo,
		Gateway: gateway,
		Events:  events,
	}
}

// Execute validates a public submission, stores it and forwards it to the
// intake workflow for scoring. An invalid submission is rejected before
// any network call or insert.
func (uc *CaptureLeadUseCase) Execute(ctx context.Context, input CaptureLeadInput) (*CaptureLeadOutput, error) {
	normalized, fieldErrors := ValidateCaptureLeadInput(input)
	if len(fieldErrors) > 0 {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: "submission rejected",
			Fields:  fieldErrors,
		}
	}

	lead := &entity.Lead{
		ID:          uuid.New().String(),
		Name:        normalized.Name,
		Email:       normalized.Email,
		Company:     normalized.Company,
		Website:     normalized.Website,
		ProblemText: normalized.ProblemText,
		Status:      entity.StatusNew,
	}

	if err := uc.Repo.Insert(ctx, lead); err != nil {
		return nil, &TechnicalError{
			Code:    "STORE_ERROR",
			Message: "failed to store lead: " + err.Error(),
		}
	}

	err := uc.Gateway.ForwardIntake(ctx, n8n.IntakePayload{
		Name:        normalized.Name,
		Email:       normalized.Email,
		Company:     normalized.Company,
		Website:     normalized.Website,
		ProblemText: normalized.ProblemText,
	})
	if err != nil {
		// Lead row is kept; the admin can see it unscored and the
		// submitter may retry.
		return nil, &TechnicalError{
			Code:    "INTAKE_WEBHOOK_FAILED",
			Message: "failed to forward submission: " + err.Error(),
		}
	}

	event := queue.LeadEvent{
		Event:      queue.EventLeadCaptured,
		LeadID:     lead.ID,
		Name:       lead.Name,
		Email:      lead.Email,
		OccurredAt: time.Now(),
	}
	if err := uc.Events.PublishLeadEvent(ctx, event); err != nil {
		log.Printf("⚠️ failed to publish lead.captured for %s: %v", lead.ID, err)
	}

	return &CaptureLeadOutput{
		ID:     lead.ID,
		Status: "received",
	}, nil
}
