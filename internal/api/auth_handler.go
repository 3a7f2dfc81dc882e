package api

import (
	"log/slog"
	"net/http"

	"github.com/coursetrack/coursetrack/internal/api/shared"
	"github.com/coursetrack/coursetrack/internal/platform/logger"
	"github.com/coursetrack/coursetrack/internal/service/auth"
)

// AuthHandler handles owner login requests.
type AuthHandler struct {
	passwordHash     string
	passwordVerifier auth.PasswordVerifier
	jwtService       auth.JWTService
	logger           *slog.Logger
}

// NewAuthHandler creates a new AuthHandler. The password hash is the bcrypt
// hash configured for the single owner account.
func NewAuthHandler(
	passwordHash string,
	passwordVerifier auth.PasswordVerifier,
	jwtService auth.JWTService,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AuthHandler")
	}

	return &AuthHandler{
		passwordHash:     passwordHash,
		passwordVerifier: passwordVerifier,
		jwtService:       jwtService,
		logger:           logger.With(slog.String("component", "auth_handler")),
	}
}

// Login handles POST /auth/login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Password is required")
		return
	}

	if err := h.passwordVerifier.Compare(h.passwordHash, req.Password); err != nil {
		log.Warn("login failed", slog.String("reason", "password mismatch"))
		shared.RespondWithError(w, r,
			MapErrorToStatusCode(auth.ErrInvalidPassword),
			GetSafeErrorMessage(auth.ErrInvalidPassword))
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to generate token", err)
		return
	}

	log.Info("owner logged in")
	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{AccessToken: token})
}
