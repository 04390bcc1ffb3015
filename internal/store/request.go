package store

import (
	"context"
	"database/sql"

	"github.com/lsweb-studio/apiserver/types"
)

// listLimit caps the dashboard listing; the reader shows newest first.
const listLimit = 100

// RequestRepository handles persistence for contact requests.
type RequestRepository struct {
	db *sql.DB
}

func NewRequestRepository(db *sql.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

func (r *RequestRepository) Create(ctx context.Context, request types.ContactRequest) (types.ContactRequest, error) {
	const query = `
		INSERT INTO contact_requests
			(id, name, email, phone, company, project_type, budget, timeline, description, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	if _, err := r.db.ExecContext(
		ctx,
		query,
		request.ID,
		request.Name,
		request.Email,
		request.Phone,
		request.Company,
		request.ProjectType,
		request.Budget,
		request.Timeline,
		request.Description,
		request.Status,
		request.CreatedAt,
	); err != nil {
		return types.ContactRequest{}, err
	}
	return request, nil
}

func (r *RequestRepository) List(ctx context.Context) ([]types.ContactRequest, error) {
	const query = `
		SELECT id, name, email, phone, company, project_type, budget, timeline, description, status, created_at
		FROM contact_requests
		ORDER BY created_at DESC
		LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, listLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := []types.ContactRequest{}
	for rows.Next() {
		var request types.ContactRequest
		if err := rows.Scan(
			&request.ID,
			&request.Name,
			&request.Email,
			&request.Phone,
			&request.Company,
			&request.ProjectType,
			&request.Budget,
			&request.Timeline,
			&request.Description,
			&request.Status,
			&request.CreatedAt,
		); err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *RequestRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	const query = `
		SELECT status, COUNT(*)
		FROM contact_requests
		GROUP BY status`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}
