package api

import (
	"context"
	"net/http"
	"os"

	"log/slog"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/akash-insiders/community-hub/internal/auth"
)

type ctxKey string

const (
	CtxAdminClaims ctxKey = "admin_claims"
	CtxRequestID   ctxKey = "request_id"
)

// AdminTokenCookie is the cookie carrying the signed admin token.
const AdminTokenCookie = "admin-token"

const requestIDHeader = "X-Request-ID"

// package-level logger used by middleware and helpers; can be set via SetLogger from caller
var logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// SetLogger installs a logger for the api package. Passing nil is a no-op.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}

// RequestIDMiddleware assigns each request an id, honoring one supplied by
// the caller, and echoes it in the response header.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)

		ctx := context.WithValue(r.Context(), CtxRequestID, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attrs := []any{
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote", r.RemoteAddr),
		}
		if id, ok := r.Context().Value(CtxRequestID).(string); ok {
			attrs = append(attrs, slog.String("request_id", id))
		}
		logger.Info("request", attrs...)

		next.ServeHTTP(w, r)
	})
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic", slog.Any("err", err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// CookieAuthMiddleware protects admin API endpoints. A missing cookie and a
// failed verification both answer a uniform 401; claims land in the request
// context on success.
func CookieAuthMiddleware(svc *auth.Service) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(AdminTokenCookie)
			if err != nil || c.Value == "" {
				writeJSON(w, messageResponse{Message: "Unauthorized"}, http.StatusUnauthorized)
				return
			}

			claims, err := svc.VerifyToken(c.Value)
			if err != nil {
				writeJSON(w, messageResponse{Message: "Unauthorized"}, http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), CtxAdminClaims, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// DashboardGateMiddleware protects the admin dashboard page. Unlike the API
// gate it redirects to the login page instead of answering 401.
func DashboardGateMiddleware(svc *auth.Service) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(AdminTokenCookie)
			if err != nil || c.Value == "" {
				http.Redirect(w, r, "/admin", http.StatusFound)
				return
			}

			if _, err := svc.VerifyToken(c.Value); err != nil {
				http.Redirect(w, r, "/admin", http.StatusFound)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
