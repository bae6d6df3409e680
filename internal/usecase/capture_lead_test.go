package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ideas26/leadflow-api/internal/entity"
	"github.com/ideas26/leadflow-api/internal/infra/integration/n8n"
)

func TestCaptureLeadRejectsInvalidWithoutSideEffects(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockLeadRepository)
	mockGateway := new(MockAutomationGateway)
	mockEvents := new(MockEventPublisher)

	uc := NewCaptureLeadUseCase(mockRepo, mockGateway, mockEvents)

	input := validSubmission()
	input.ProblemText = "not thirty characters"

	output, err := uc.Execute(ctx, input)

	assert.Nil(t, output)
	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
	assert.Equal(t, "Problem statement must be at least 30 characters", domainErr.Fields["problem_text"])

	// No insert, no webhook, no event.
	mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	mockGateway.AssertNotCalled(t, "ForwardIntake", mock.Anything, mock.Anything)
	mockEvents.AssertNotCalled(t, "PublishLeadEvent", mock.Anything, mock.Anything)
}

func TestCaptureLeadForwardsTrimmedPayloadOnce(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockLeadRepository)
	mockGateway := new(MockAutomationGateway)
	mockEvents := new(MockEventPublisher)

	mockRepo.On("Insert", ctx, mock.Anything).Return(nil)
	mockGateway.On("ForwardIntake", ctx, n8n.IntakePayload{
		Name:        "Ada",
		Email:       "ada@x.com",
		Company:     "",
		Website:     "",
		ProblemText: "We need automation for our data entry flows.",
	}).Return(nil).Once()
	mockEvents.On("PublishLeadEvent", ctx, mock.Anything).Return(nil)

	uc := NewCaptureLeadUseCase(mockRepo, mockGateway, mockEvents)

	output, err := uc.Execute(ctx, CaptureLeadInput{
		Name:        "  Ada ",
		Email:       "ada@x.com",
		ProblemText: " We need automation for our data entry flows. ",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, output.ID)
	assert.Equal(t, "received", output.Status)

	mockGateway.AssertExpectations(t)
	mockRepo.AssertCalled(t, "Insert", ctx, mock.MatchedBy(func(lead *entity.Lead) bool {
		return lead.Name == "Ada" && lead.Status == entity.StatusNew
	}))
}

func TestCaptureLeadWebhookFailureKeepsLead(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockLeadRepository)
	mockGateway := new(MockAutomationGateway)
	mockEvents := new(MockEventPublisher)

	mockRepo.On("Insert", ctx, mock.Anything).Return(nil)
	mockGateway.On("ForwardIntake", ctx, mock.Anything).Return(errors.New("status 500"))

	uc := NewCaptureLeadUseCase(mockRepo, mockGateway, mockEvents)

	output, err := uc.Execute(ctx, validSubmission())

	assert.Nil(t, output)
	assert.True(t, IsTechnicalError(err))
	mockEvents.AssertNotCalled(t, "PublishLeadEvent", mock.Anything, mock.Anything)
}

func TestCaptureLeadEventFailureDoesNotFailSubmission(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockLeadRepository)
	mockGateway := new(MockAutomationGateway)
	mockEvents := new(MockEventPublisher)

	mockRepo.On("Insert", ctx, mock.Anything).Return(nil)
	mockGateway.On("ForwardIntake", ctx, mock.Anything).Return(nil)
	mockEvents.On("PublishLeadEvent", ctx, mock.Anything).Return(errors.New("broker down"))

	uc := NewCaptureLeadUseCase(mockRepo, mockGateway, mockEvents)

	output, err := uc.Execute(ctx, validSubmission())

	assert.NoError(t, err)
	assert.NotNil(t, output)
}
