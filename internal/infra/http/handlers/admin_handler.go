package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ideas26/leadflow-api/internal/entity"
	"github.com/ideas26/leadflow-api/internal/infra/http/middleware"
	"github.com/ideas26/leadflow-api/internal/usecase"
)

// AdminHandler serves the guarded dashboard endpoints: lead list with
// filters, aggregate stats, single-lead detail and the outreach trigger.
type AdminHandler struct {
	ListUseCase     *usecase.ListLeadsUseCase
	StatsUseCase    *usecase.LeadStatsUseCase
	OutreachUseCase *usecase.SendOutreachUseCase
	LeadRepo        usecase.LeadRepositoryInterface
}

func NewAdminHandler(
	listUseCase *usecase.ListLeadsUseCase,
	statsUseCase *usecase.LeadStatsUseCase,
	outreachUseCase *usecase.SendOutreachUseCase,
	leadRepo usecase.LeadRepositoryInterface,
) *AdminHandler {
	return &AdminHandler{
		ListUseCase:     listUseCase,
		StatsUseCase:    statsUseCase,
		OutreachUseCase: outreachUseCase,
		LeadRepo:        leadRepo,
	}
}

type leadListResponse struct {
	Leads []entity.LeadSummary `json:"leads"`
}

func (h *AdminHandler) HandleListLeads(w http.ResponseWriter, r *http.Request) {
	bandFilter := r.URL.Query().Get("fit_band")
	labelFilter := r.URL.Query().Get("use_case_label")

	leads, err := h.ListUseCase.Execute(r.Context(), bandFilter, labelFilter)
	if err != nil {
		if usecase.IsDomainError(err) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch leads"})
		return
	}

	writeJSON(w, http.StatusOK, leadListResponse{Leads: leads})
}

func (h *AdminHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.StatsUseCase.Execute(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to aggregate leads"})
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (h *AdminHandler) HandleGetLead(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "leadID")

	lead, err := h.LeadRepo.FindByID(r.Context(), leadID)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "lead not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch lead"})
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

func (h *AdminHandler) HandleSendOutreach(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "leadID")

	lead, err := h.OutreachUseCase.Execute(r.Context(), leadID)
	if err != nil {
		var domainErr *usecase.DomainError
		if errors.As(err, &domainErr) {
			status := http.StatusConflict
			if domainErr.Code == "LEAD_NOT_FOUND" {
				status = http.StatusNotFound
			}
			writeJSON(w, status, map[string]string{"error": domainErr.Message})
			return
		}

		middleware.RecordIntegrationError("outreach")
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "failed to send outreach, please try again"})
		return
	}

	middleware.RecordOutreachSent()
	writeJSON(w, http.StatusOK, lead)
}
