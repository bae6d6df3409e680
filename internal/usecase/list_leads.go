package usecase

import (
	"context"

	"github.com/ideas26/leadflow-api/internal/entity"
)

type ListLeadsUseCase struct {
	Repo LeadRepositoryInterface
}

func NewListLeadsUseCase(repo LeadRepositoryInterface) *ListLeadsUseCase {
	return &ListLeadsUseCase{Repo: repo}
}

// Execute returns the dashboard rows, newest first. Each filter is either
// the All sentinel (no constraint) or one of the enumerated values; an
// unknown value is rejected rather than silently matching nothing.
func (uc *ListLeadsUseCase) Execute(ctx context.Context, bandFilter, labelFilter string) ([]entity.LeadSummary, error) {
	filter := entity.LeadFilter{}

	if bandFilter != "" && bandFilter != entity.FilterAll {
		if !entity.IsValidFitBand(bandFilter) {
			return nil, &DomainError{
				Code:    "INVALID_FILTER",
				Message: "unknown fit band: " + bandFilter,
			}
		}
		filter.FitBand = bandFilter
	}

	if labelFilter != "" && labelFilter != entity.FilterAll {
		if !entity.IsValidUseCaseLabel(labelFilter) {
			return nil, &DomainError{
				Code:    "INVALID_FILTER",
				Message: "unknown use case label: " + labelFilter,
			}
		}
		filter.UseCaseLabel = labelFilter
	}

	leads, err := uc.Repo.List(ctx, filter)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "STORE_ERROR",
			Message: "failed to list leads: " + err.Error(),
		}
	}

	return leads, nil
}
