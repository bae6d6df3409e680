package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ideas26/leadflow-api/internal/infra/http/middleware"
	"github.com/ideas26/leadflow-api/internal/usecase"
)

type AuthHandler struct {
	LoginUseCase *usecase.LoginUseCase
}

func NewAuthHandler(loginUseCase *usecase.LoginUseCase) *AuthHandler {
	return &AuthHandler{LoginUseCase: loginUseCase}
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var input usecase.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	output, err := h.LoginUseCase.Execute(r.Context(), input)
	if err != nil {
		var domainErr *usecase.DomainError
		if errors.As(err, &domainErr) {
			if domainErr.Code == "VALIDATION_ERROR" {
				writeJSON(w, http.StatusUnprocessableEntity, captureErrorResponse{Errors: domainErr.Fields})
				return
			}
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": domainErr.Message})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "login failed"})
		return
	}

	writeJSON(w, http.StatusOK, output)
}

// HandleSession answers the dashboard's session-presence query: 200 with
// the current user while the token holds, 401 from the auth gate otherwise.
func (h *AuthHandler) HandleSession(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "no active session"})
		return
	}

	writeJSON(w, http.StatusOK, usecase.UserInfo{
		ID:    claims.Subject,
		Email: claims.Email,
	})
}

// HandleLogout is stateless: tokens are not tracked server side, the
// client simply discards its copy.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
