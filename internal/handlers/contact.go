package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lsweb-studio/apiserver/internal/services"
)

// ContactHandler provides the intake and dashboard endpoints.
type ContactHandler struct {
	intakeService  *services.IntakeService
	requestService *services.RequestService
}

// NewContactHandler constructs a ContactHandler with the provided dependencies.
func NewContactHandler(intakeService *services.IntakeService, requestService *services.RequestService) *ContactHandler {
	return &ContactHandler{
		intakeService:  intakeService,
		requestService: requestService,
	}
}

// Create accepts a project-request submission.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ContactRequestPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Solicitud inválida")
		return
	}

	result, err := h.intakeService.Submit(r.Context(), services.SubmitInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		ProjectType: req.ProjectType,
		Budget:      req.Budget,
		Timeline:    req.Timeline,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			writeError(w, http.StatusBadRequest, "Faltan campos obligatorios")
			return
		}
		writeError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	writeJSON(w, http.StatusOK, ContactRequestResponse{
		Success: true,
		Message: "Solicitud enviada exitosamente. Te contactaremos pronto.",
		ID:      result.ID,
	})
}

// List returns stored requests for the dashboard, newest first.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	requests, err := h.requestService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

// Stats returns per-status request counts for the dashboard.
func (h *ContactHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.requestService.Stats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// ContactRequestPayload is the submission body.
type ContactRequestPayload struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Company     string `json:"company"`
	ProjectType string `json:"projectType"`
	Budget      string `json:"budget"`
	Timeline    string `json:"timeline"`
	Description string `json:"description"`
}

// ContactRequestResponse acknowledges a submission.
type ContactRequestResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}
