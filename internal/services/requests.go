package services

import (
	"context"

	"github.com/lsweb-studio/apiserver/types"
)

// RequestReader defines the read operations used by the dashboard.
type RequestReader interface {
	List(ctx context.Context) ([]types.ContactRequest, error)
	CountByStatus(ctx context.Context) (map[string]int, error)
}

// RequestStats summarizes stored requests by workflow status.
type RequestStats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
}

// RequestService exposes the dashboard's read-only views.
type RequestService struct {
	store RequestReader
}

func NewRequestService(store RequestReader) *RequestService {
	return &RequestService{store: store}
}

// List returns stored requests, newest first.
func (s *RequestService) List(ctx context.Context) ([]types.ContactRequest, error) {
	return s.store.List(ctx)
}

// Stats returns per-status counts of stored requests.
func (s *RequestService) Stats(ctx context.Context) (RequestStats, error) {
	counts, err := s.store.CountByStatus(ctx)
	if err != nil {
		return RequestStats{}, err
	}

	stats := RequestStats{
		Pending:    counts[types.StatusPending],
		InProgress: counts[types.StatusInProgress],
		Completed:  counts[types.StatusCompleted],
	}
	for _, count := range counts {
		stats.Total += count
	}
	return stats, nil
}
