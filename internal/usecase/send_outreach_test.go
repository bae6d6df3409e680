package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ideas26/leadflow-api/internal/entity"
	"github.com/ideas26/leadflow-api/internal/infra/integration/n8n"
	"github.com/ideas26/leadflow-api/internal/infra/queue"
)

func TestSendOutreachSuccess(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockLeadRepository)
	mockGateway := new(MockAutomationGateway)
	mockEvents := new(MockEventPublisher)

	lead := &entity.Lead{ID: "lead-1", Name: "Ada", Email: "ada@x.com", Status: entity.StatusNew}
	mockRepo.On("FindByID", ctx, "lead-1").Return(lead, nil)
	mockGateway.On("TriggerOutreach", ctx, n8n.OutreachPayload{LeadID: "lead-1"}).Return(nil).Once()
	mockRepo.On("UpdateStatus", ctx, "lead-1", entity.StatusOutreachSent).Return(nil).Once()
	mockEvents.On("PublishLeadEvent", ctx, mock.MatchedBy(func(ev queue.LeadEvent) bool {
		return ev.Event == queue.EventLeadOutreachSent && ev.LeadID == "lead-1"
	})).Return(nil).Once()

	uc := NewSendOutreachUseCase(mockRepo, mockGateway, mockEvents)
	updated, err := uc.Execute(ctx, "lead-1")

	assert.NoError(t, err)
	assert.Equal(t, entity.StatusOutreachSent, updated.Status)
	mockGateway.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
	mockEvents.AssertExpectations(t)
}

func TestSendOutreachIdempotentOnContactedLead(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockLeadRepository)
	mockGateway := new(MockAutomationGateway)
	mockEvents := new(MockEventPublisher)

	lead := &entity.Lead{ID: "lead-1", Status: entity.StatusOutreachSent}
	mockRepo.On("FindByID", ctx, "lead-1").Return(lead, nil)

	uc := NewSendOutreachUseCase(mockRepo, mockGateway, mockEvents)
	_, err := uc.Execute(ctx, "lead-1")

	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "OUTREACH_ALREADY_SENT", domainErr.Code)

	// Neither the webhook nor the store was touched.
	mockGateway.AssertNotCalled(t, "TriggerOutreach", mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestSendOutreachWebhookFailureLeavesStatus(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockLeadRepository)
	mockGateway := new(MockAutomationGateway)
	mockEvents := new(MockEventPublisher)

	lead := &entity.Lead{ID: "lead-1", Status: entity.StatusNew}
	mockRepo.On("FindByID", ctx, "lead-1").Return(lead, nil)
	mockGateway.On("TriggerOutreach", ctx, mock.Anything).Return(errors.New("status 502"))

	uc := NewSendOutreachUseCase(mockRepo, mockGateway, mockEvents)
	_, err := uc.Execute(ctx, "lead-1")

	assert.True(t, IsTechnicalError(err))
	mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	mockEvents.AssertNotCalled(t, "PublishLeadEvent", mock.Anything, mock.Anything)
}

func TestSendOutreachUnknownLead(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockLeadRepository)
	mockGateway := new(MockAutomationGateway)
	mockEvents := new(MockEventPublisher)

	mockRepo.On("FindByID", ctx, "missing").Return(nil, entity.ErrLeadNotFound)

	uc := NewSendOutreachUseCase(mockRepo, mockGateway, mockEvents)
	_, err := uc.Execute(ctx, "missing")

	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "LEAD_NOT_FOUND", domainErr.Code)
}

func TestSendOutreachSingleFlightPerLead(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockGateway := new(MockAutomationGateway)
	mockEvents := new(MockEventPublisher)

	uc := NewSendOutreachUseCase(mockRepo, mockGateway, mockEvents)

	// Simulate an in-flight send for the same lead.
	assert.True(t, uc.acquire("lead-1"))
	_, err := uc.Execute(context.Background(), "lead-1")

	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "OUTREACH_IN_FLIGHT", domainErr.Code)

	uc.release("lead-1")
	mockRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}
