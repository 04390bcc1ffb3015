package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lsweb-studio/apiserver/types"
)

// ErrValidation is returned when a required submission field is missing.
var ErrValidation = errors.New("missing required fields")

// RequestStore defines the persistence operations used by intake.
type RequestStore interface {
	Create(ctx context.Context, request types.ContactRequest) (types.ContactRequest, error)
}

// Notifier delivers the operator notification for a new request.
type Notifier interface {
	NewRequest(ctx context.Context, request types.ContactRequest) error
}

// SubmitInput is the raw submission payload before validation.
type SubmitInput struct {
	Name        string
	Email       string
	Phone       string
	Company     string
	ProjectType string
	Budget      string
	Timeline    string
	Description string
}

// SubmitResult reports the outcome of a submission. Stored and Notified
// record the per-dependency outcomes of the best-effort side effects;
// the submission itself succeeds whenever validation passed.
type SubmitResult struct {
	ID       string
	Stored   bool
	Notified bool
}

// IntakeService validates and records project requests.
type IntakeService struct {
	store    RequestStore
	notifier Notifier
	logger   *slog.Logger
}

func NewIntakeService(store RequestStore, notifier Notifier, logger *slog.Logger) *IntakeService {
	return &IntakeService{
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

// Submit validates the payload and, if valid, persists the request and
// notifies the operator. Store and notifier failures are logged and do
// not fail the submission.
func (s *IntakeService) Submit(ctx context.Context, input SubmitInput) (SubmitResult, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	projectType := strings.TrimSpace(input.ProjectType)
	description := strings.TrimSpace(input.Description)

	if name == "" || email == "" || projectType == "" || description == "" {
		return SubmitResult{}, ErrValidation
	}

	request := types.ContactRequest{
		ID:          uuid.NewString(),
		Name:        name,
		Email:       email,
		Phone:       optional(input.Phone),
		Company:     optional(input.Company),
		ProjectType: projectType,
		Budget:      optional(input.Budget),
		Timeline:    optional(input.Timeline),
		Description: description,
		Status:      types.StatusPending,
		CreatedAt:   time.Now().UTC(),
	}

	result := SubmitResult{ID: request.ID}

	if _, err := s.store.Create(ctx, request); err != nil {
		s.logger.Error("failed to persist contact request",
			slog.String("request_id", request.ID),
			slog.String("error", err.Error()),
		)
	} else {
		result.Stored = true
	}

	if err := s.notifier.NewRequest(ctx, request); err != nil {
		s.logger.Warn("failed to send contact request notification",
			slog.String("request_id", request.ID),
			slog.String("error", err.Error()),
		)
	} else {
		result.Notified = true
	}

	return result, nil
}

// optional trims an optional field, mapping blank values to nil.
func optional(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
