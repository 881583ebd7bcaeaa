package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/akash-insiders/community-hub/internal/auth"
	"github.com/akash-insiders/community-hub/pkg/validation"
)

type AuthHandler struct {
	svc      *auth.Service
	validate *validator.Validate
	// secure marks the cookie Secure outside development
	secure bool
}

// NewAuthHandler creates a new AuthHandler with required dependencies.
func NewAuthHandler(svc *auth.Service, secure bool) *AuthHandler {
	return &AuthHandler{svc: svc, validate: validation.New(), secure: secure}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
}

// Login authenticates the admin and sets the HTTP-only token cookie. Unknown
// email and wrong password answer the same 401.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, messageResponse{Message: "Invalid payload"}, http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeJSON(w, validationResponse{Message: "Invalid payload", Fields: validation.Fields(err)}, http.StatusBadRequest)
		return
	}

	admin, err := h.svc.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeJSON(w, messageResponse{Message: "Invalid credentials"}, http.StatusUnauthorized)
			return
		}

		logger.Error("authenticate", slog.Any("err", err))
		writeJSON(w, messageResponse{Message: "Internal Server Error"}, http.StatusInternalServerError)
		return
	}

	token, err := h.svc.IssueToken(admin)
	if err != nil {
		logger.Error("issue token", slog.Any("err", err))
		writeJSON(w, messageResponse{Message: "Internal Server Error"}, http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     AdminTokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.svc.TokenTTL().Seconds()),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, messageResponse{Message: "ok"}, http.StatusOK)
}

// Logout clears the token cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     AdminTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, messageResponse{Message: "ok"}, http.StatusOK)
}
