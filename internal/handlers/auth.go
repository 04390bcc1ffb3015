package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/lsweb-studio/apiserver/internal/services"
)

// AuthHandler provides login and admin bootstrap endpoints.
type AuthHandler struct {
	authService   *services.AuthService
	adminEmail    string
	adminPassword string
}

// NewAuthHandler constructs an AuthHandler with the provided dependencies.
func NewAuthHandler(authService *services.AuthService, adminEmail, adminPassword string) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
	}
}

// RequireAuth enforces a valid bearer token and injects its claims into context.
func (h *AuthHandler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := bearerToken(r)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "No autorizado")
			return
		}

		claims, err := h.authService.VerifyToken(tokenString)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "No autorizado")
			return
		}

		ctx := context.WithValue(r.Context(), contextClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Login verifies credentials and returns a session token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Solicitud inválida")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email y contraseña son requeridos")
		return
	}

	result, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			// Same generic message for unknown email and wrong password.
			writeJSON(w, http.StatusOK, ErrorResponse{Success: false, Message: "Credenciales inválidas"})
			return
		}
		writeError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{
		Success: true,
		Message: "Login exitoso",
		Token:   result.Token,
		User: UserPayload{
			ID:    result.User.ID,
			Email: result.User.Email,
			Role:  result.User.Role,
		},
	})
}

// Me returns the public projection of the authenticated account.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "No autorizado")
		return
	}

	writeJSON(w, http.StatusOK, UserPayload{
		ID:    claims.UserID,
		Email: claims.Email,
		Role:  claims.Role,
	})
}

// InitAdmin idempotently provisions the bootstrap admin account.
func (h *AuthHandler) InitAdmin(w http.ResponseWriter, r *http.Request) {
	created, err := h.authService.EnsureAdmin(r.Context(), h.adminEmail, h.adminPassword)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create admin user")
		return
	}

	message := "Admin user already exists"
	if created {
		message = "Admin user created successfully"
	}
	writeJSON(w, http.StatusOK, StatusResponse{Success: true, Message: message})
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserPayload is the public projection of an account. It never carries
// the password hash.
type UserPayload struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    UserPayload `json:"user"`
}

// StatusResponse is the minimal success payload.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func bearerToken(r *http.Request) (string, error) {
	auth := strings.TrimSpace(r.Header.Get("Authorization"))
	if auth == "" {
		return "", errors.New("missing authorization")
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization")
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", errors.New("invalid authorization")
	}
	return token, nil
}
