package usecase

import (
	"context"

	"github.com/ideas26/leadflow-api/internal/entity"
	"github.com/ideas26/leadflow-api/internal/infra/integration/n8n"
)

type LeadRepositoryInterface interface {
	Insert(ctx context.Context, lead *entity.Lead) error
	List(ctx context.Context, filter entity.LeadFilter) ([]entity.LeadSummary, error)
	FindByID(ctx context.Context, id string) (*entity.Lead, error)
	UpdateStatus(ctx context.Context, id, status string) error
	UpdateScoring(ctx context.Context, id string, score *float64, band, label, rationale string) error
	CountAll(ctx context.Context) (int, error)
	CountByFitBand(ctx context.Context) (map[string]int, error)
	CountByUseCaseLabel(ctx context.Context) (map[string]int, error)
}

type UserRepositoryInterface interface {
	FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error)
}

// AutomationGateway is the pair of n8n workflow webhooks.
type AutomationGateway interface {
	ForwardIntake(ctx context.Context, payload n8n.IntakePayload) error
	TriggerOutreach(ctx context.Context, payload n8n.OutreachPayload) error
}
