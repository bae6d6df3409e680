package usecase

import (
	"context"
	"sync"

	"github.com/ideas26/leadflow-api/internal/entity"
	"github.com/ideas26/leadflow-api/internal/infra/queue"
)

// LeadStatsUseCase aggregates the dashboard tiles: total lead count plus
// per-band and per-label tallies. Every enumerated category is present in
// the output, unobserved ones at zero.
//
// Results are memoized behind a generation counter. Publishing any lead
// event bumps the generation, so the next Execute recomputes; a bump that
// lands mid-recompute marks that result stale and it is not cached.
type LeadStatsUseCase struct {
	Repo LeadRepositoryInterface

	mu        sync.Mutex
	gen       uint64
	cachedGen uint64
	cached    *StatsOutput
}

func NewLeadStatsUseCase(repo LeadRepositoryInterface) *LeadStatsUseCase {
	return &LeadStatsUseCase{Repo: repo}
}

// PublishLeadEvent makes the stats cache a lead-event sink: any lead
// change invalidates the memoized aggregate.
func (uc *LeadStatsUseCase) PublishLeadEvent(_ context.Context, _ queue.LeadEvent) error {
	uc.mu.Lock()
	uc.gen++
	uc.mu.Unlock()
	return nil
}

func (uc *LeadStatsUseCase) Execute(ctx context.Context) (*StatsOutput, error) {
	uc.mu.Lock()
	gen := uc.gen
	if uc.cached != nil && uc.cachedGen == gen {
		out := uc.cached
		uc.mu.Unlock()
		return out, nil
	}
	uc.mu.Unlock()

	stats, err := uc.recompute(ctx)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "STORE_ERROR",
			Message: "failed to aggregate leads: " + err.Error(),
		}
	}

	uc.mu.Lock()
	if uc.gen == gen {
		uc.cached = stats
		uc.cachedGen = gen
	}
	uc.mu.Unlock()

	return stats, nil
}

func (uc *LeadStatsUseCase) recompute(ctx context.Context) (*StatsOutput, error) {
	total, err := uc.Repo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	observedBands, err := uc.Repo.CountByFitBand(ctx)
	if err != nil {
		return nil, err
	}

	observedLabels, err := uc.Repo.CountByUseCaseLabel(ctx)
	if err != nil {
		return nil, err
	}

	stats := &StatsOutput{
		TotalLeads: total,
		BandStats:  make(map[string]int, len(entity.FitBands)),
		LabelStats: make(map[string]int, len(entity.UseCaseLabels)),
	}
	for _, band := range entity.FitBands {
		stats.BandStats[band] = observedBands[band]
	}
	for _, label := range entity.UseCaseLabels {
		stats.LabelStats[label] = observedLabels[label]
	}

	return stats, nil
}
