package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/ideas26/leadflow-api/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Insert(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, name, email, company, website, problem_text, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := r.DB.QueryRowContext(
		ctx,
		query,
		lead.ID,
		lead.Name,
		lead.Email,
		nullString(lead.Company),
		nullString(lead.Website),
		lead.ProblemText,
		lead.Status,
	).Scan(&lead.CreatedAt)

	if err != nil {
		log.Printf("lead insert failed: %v", err)
	}
	return err
}

// List returns the dashboard projection ordered by creation time
// descending. A set filter adds an equality predicate; the All sentinel is
// resolved to the empty string before reaching here.
func (r *LeadRepository) List(ctx context.Context, filter entity.LeadFilter) ([]entity.LeadSummary, error) {
	query := `
		SELECT id, created_at, name, company, fit_score, fit_band, use_case_label, status
		FROM leads
	`

	var (
		conds []string
		args  []interface{}
	)
	if filter.FitBand != "" {
		args = append(args, filter.FitBand)
		conds = append(conds, fmt.Sprintf("fit_band = $%d", len(args)))
	}
	if filter.UseCaseLabel != "" {
		args = append(args, filter.UseCaseLabel)
		conds = append(conds, fmt.Sprintf("use_case_label = $%d", len(args)))
	}

	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := []entity.LeadSummary{}
	for rows.Next() {
		var (
			lead    entity.LeadSummary
			company sql.NullString
			score   sql.NullFloat64
			band    sql.NullString
			label   sql.NullString
			status  sql.NullString
		)
		err := rows.Scan(&lead.ID, &lead.CreatedAt, &lead.Name, &company, &score, &band, &label, &status)
		if err != nil {
			return nil, err
		}
		lead.Company = company.String
		if score.Valid {
			lead.FitScore = &score.Float64
		}
		lead.FitBand = band.String
		lead.UseCaseLabel = label.String
		lead.Status = statusOrNew(status)
		leads = append(leads, lead)
	}

	return leads, rows.Err()
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := `
		SELECT id, created_at, name, email, company, website, problem_text,
		       fit_score, fit_band, use_case_label, rationale, status
		FROM leads
		WHERE id = $1
	`

	var (
		lead      entity.Lead
		company   sql.NullString
		website   sql.NullString
		score     sql.NullFloat64
		band      sql.NullString
		label     sql.NullString
		rationale sql.NullString
		status    sql.NullString
	)

	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&lead.ID,
		&lead.CreatedAt,
		&lead.Name,
		&lead.Email,
		&company,
		&website,
		&lead.ProblemText,
		&score,
		&band,
		&label,
		&rationale,
		&status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrLeadNotFound
		}
		return nil, err
	}

	lead.Company = company.String
	lead.Website = website.String
	if score.Valid {
		lead.FitScore = &score.Float64
	}
	lead.FitBand = band.String
	lead.UseCaseLabel = label.String
	lead.Rationale = rationale.String
	lead.Status = statusOrNew(status)

	return &lead, nil
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id, status string) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE leads SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrLeadNotFound
	}
	return nil
}

// UpdateScoring writes the four columns owned by the scoring pipeline and
// nothing else.
func (r *LeadRepository) UpdateScoring(ctx context.Context, id string, score *float64, band, label, rationale string) error {
	query := `
		UPDATE leads
		SET fit_score = $2, fit_band = $3, use_case_label = $4, rationale = $5
		WHERE id = $1
	`

	result, err := r.DB.ExecContext(ctx, query,
		id,
		score,
		nullString(band),
		nullString(label),
		nullString(rationale),
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrLeadNotFound
	}
	return nil
}

func (r *LeadRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM leads`).Scan(&count)
	return count, err
}

func (r *LeadRepository) CountByFitBand(ctx context.Context) (map[string]int, error) {
	return r.countGrouped(ctx, `
		SELECT fit_band, COUNT(*)
		FROM leads
		WHERE fit_band IS NOT NULL
		GROUP BY fit_band
	`)
}

func (r *LeadRepository) CountByUseCaseLabel(ctx context.Context) (map[string]int, error) {
	return r.countGrouped(ctx, `
		SELECT use_case_label, COUNT(*)
		FROM leads
		WHERE use_case_label IS NOT NULL
		GROUP BY use_case_label
	`)
}

func (r *LeadRepository) countGrouped(ctx context.Context, query string) (map[string]int, error) {
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			value string
			count int
		)
		if err := rows.Scan(&value, &count); err != nil {
			return nil, err
		}
		counts[value] = count
	}

	return counts, rows.Err()
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Rows inserted before the status column default existed carry NULL, which
// reads as "new".
func statusOrNew(status sql.NullString) string {
	if status.Valid && status.String != "" {
		return status.String
	}
	return entity.StatusNew
}
