package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestScoreLeadUpdatesOnlyScoringColumns(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockLeadRepository)
	mockEvents := new(MockEventPublisher)

	score := 82.0
	mockRepo.On("UpdateScoring", ctx, "lead-1", &score, "High", "Sales ops", "strong fit").Return(nil).Once()
	mockEvents.On("PublishLeadEvent", ctx, mock.Anything).Return(nil)

	uc := NewScoreLeadUseCase(mockRepo, mockEvents)
	err := uc.Execute(ctx, ScoreLeadInput{
		LeadID:       "lead-1",
		FitScore:     &score,
		FitBand:      "High",
		UseCaseLabel: "Sales ops",
		Rationale:    "strong fit",
	})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestScoreLeadRejectsUnknownEnumValues(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockLeadRepository)
	mockEvents := new(MockEventPublisher)
	uc := NewScoreLeadUseCase(mockRepo, mockEvents)

	err := uc.Execute(ctx, ScoreLeadInput{LeadID: "lead-1", FitBand: "Amazing"})
	assert.True(t, IsDomainError(err))

	err = uc.Execute(ctx, ScoreLeadInput{LeadID: "lead-1", UseCaseLabel: "Whatever"})
	assert.True(t, IsDomainError(err))

	err = uc.Execute(ctx, ScoreLeadInput{})
	assert.True(t, IsDomainError(err))

	mockRepo.AssertNotCalled(t, "UpdateScoring",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
