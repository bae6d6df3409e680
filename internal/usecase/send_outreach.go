package usecase

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/ideas26/leadflow-api/internal/entity"
	"github.com/ideas26/leadflow-api/internal/infra/integration/n8n"
	"github.com/ideas26/leadflow-api/internal/infra/queue"
)

type SendOutreachUseCase struct {
	Repo    LeadRepositoryInterface
	Gateway AutomationGateway
	Events  queue.LeadEventPublisherInterface

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewSendOutreachUseCase(
	repo LeadRepositoryInterface,
	gateway AutomationGateway,
	events queue.LeadEventPublisherInterface,
) *SendOutreachUseCase {
	return &SendOutreachUseCase{
		Repo:     repo,
		Gateway:  gateway,
		Events:   events,
		inFlight: make(map[string]bool),
	}
}

// Execute triggers the outreach workflow for one lead and marks it
// contacted. A lead already marked outreach_sent is rejected before any
// network call, and only one send per lead may be in flight at a time.
func (uc *SendOutreachUseCase) Execute(ctx context.Context, leadID string) (*entity.Lead, error) {
	if !uc.acquire(leadID) {
		return nil, &DomainError{
			Code:    "OUTREACH_IN_FLIGHT",
			Message: "outreach already in progress for this lead",
		}
	}
	defer uc.release(leadID)

	lead, err := uc.Repo.FindByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, &DomainError{
				Code:    "LEAD_NOT_FOUND",
				Message: "lead not found",
			}
		}
		return nil, &TechnicalError{
			Code:    "STORE_ERROR",
			Message: "failed to load lead: " + err.Error(),
		}
	}

	if lead.Status == entity.StatusOutreachSent {
		return nil, &DomainError{
			Code:    "OUTREACH_ALREADY_SENT",
			Message: "outreach was already sent for this lead",
		}
	}

	err = uc.Gateway.TriggerOutreach(ctx, n8n.OutreachPayload{LeadID: leadID})
	if err != nil {
		// Status untouched, action stays retryable.
		return nil, &TechnicalError{
			Code:    "OUTREACH_WEBHOOK_FAILED",
			Message: "failed to trigger outreach: " + err.Error(),
		}
	}

	if err := uc.Repo.UpdateStatus(ctx, leadID, entity.StatusOutreachSent); err != nil {
		return nil, &TechnicalError{
			Code:    "STORE_ERROR",
			Message: "outreach sent but status update failed: " + err.Error(),
		}
	}
	lead.Status = entity.StatusOutreachSent

	event := queue.LeadEvent{
		Event:      queue.EventLeadOutreachSent,
		LeadID:     lead.ID,
		Name:       lead.Name,
		Email:      lead.Email,
		OccurredAt: time.Now(),
	}
	if err := uc.Events.PublishLeadEvent(ctx, event); err != nil {
		log.Printf("⚠️ failed to publish lead.outreach_sent for %s: %v", lead.ID, err)
	}

	return lead, nil
}

func (uc *SendOutreachUseCase) acquire(leadID string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.inFlight[leadID] {
		return false
	}
	uc.inFlight[leadID] = true
	return true
}

func (uc *SendOutreachUseCase) release(leadID string) {
	uc.mu.Lock()
	delete(uc.inFlight, leadID)
	uc.mu.Unlock()
}
