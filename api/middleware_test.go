package api_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/akash-insiders/community-hub/api"
	"github.com/akash-insiders/community-hub/internal/auth"
	"github.com/akash-insiders/community-hub/pkg/models"
	"github.com/akash-insiders/community-hub/pkg/repository/mock"
)

func testAuthService() *auth.Service {
	return auth.NewService(mock.NewMocks().Admins, "testsecret", time.Hour)
}

func TestRequestIDMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := r.Context().Value(api.CtxRequestID).(string); !ok || id == "" {
			t.Fatalf("expected request id in context")
		}
		w.WriteHeader(http.StatusOK)
	})

	handler := api.RequestIDMiddleware(next)

	// generated id is echoed in the response header
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/id", nil))
	if got := w.Result().Header.Get("X-Request-ID"); got == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}

	// caller-supplied id is preserved
	req := httptest.NewRequest(http.MethodGet, "/id", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w2 := httptest.NewRecorder()
	handler.ServeHTTP(w2, req)
	if got := w2.Result().Header.Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("expected caller request id to be preserved, got %q", got)
	}
}

func TestLoggingMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	handler := api.LoggingMiddleware(next)
	req := httptest.NewRequest(http.MethodGet, "/log", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)
	res := w.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if string(b) != "ok" {
		t.Fatalf("unexpected body: %q", string(b))
	}
}

func TestCORSMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := api.CORSMiddleware(next)

	// OPTIONS should return 204 and not call next
	reqOpt := httptest.NewRequest(http.MethodOptions, "/cors", nil)
	wOpt := httptest.NewRecorder()
	handler.ServeHTTP(wOpt, reqOpt)
	resOpt := wOpt.Result()
	defer resOpt.Body.Close()
	if resOpt.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204 for OPTIONS, got %d", resOpt.StatusCode)
	}
	if got := resOpt.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected CORS header set, got %q", got)
	}

	// GET should pass through and set headers
	reqGet := httptest.NewRequest(http.MethodGet, "/cors", nil)
	wGet := httptest.NewRecorder()
	handler.ServeHTTP(wGet, reqGet)
	resGet := wGet.Result()
	defer resGet.Body.Close()
	if resGet.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for GET, got %d", resGet.StatusCode)
	}
	if got := resGet.Header.Get("Access-Control-Allow-Methods"); !strings.Contains(got, "GET") {
		t.Fatalf("expected Allow-Methods to include GET, got %q", got)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	// handler that panics
	pan := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	handler := api.RecoveryMiddleware(pan)
	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	res := w.Result()
	defer res.Body.Close()
	if res.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500 from panic recovery, got %d", res.StatusCode)
	}

	// normal handler should pass through
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	handler2 := api.RecoveryMiddleware(ok)
	w2 := httptest.NewRecorder()
	handler2.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/ok", nil))
	if w2.Result().StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for normal path, got %d", w2.Result().StatusCode)
	}
}

func TestCookieAuthMiddleware(t *testing.T) {
	svc := testAuthService()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(api.CtxAdminClaims).(*auth.Claims)
		if !ok || claims == nil {
			t.Fatalf("expected claims in context")
		}
		w.WriteHeader(http.StatusOK)
	})
	handler := api.CookieAuthMiddleware(svc)(next)

	// no cookie
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil))
	if w.Result().StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without cookie, got %d", w.Result().StatusCode)
	}

	// garbage token
	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req.AddCookie(&http.Cookie{Name: api.AdminTokenCookie, Value: "garbage"})
	w2 := httptest.NewRecorder()
	handler.ServeHTTP(w2, req)
	if w2.Result().StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for garbage token, got %d", w2.Result().StatusCode)
	}

	// valid token
	token, err := svc.IssueToken(&models.Admin{ID: 1, Email: "admin@akash.network", Name: "Admin"})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	req3 := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req3.AddCookie(&http.Cookie{Name: api.AdminTokenCookie, Value: token})
	w3 := httptest.NewRecorder()
	handler.ServeHTTP(w3, req3)
	if w3.Result().StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for valid token, got %d", w3.Result().StatusCode)
	}
}

func TestDashboardGateMiddleware(t *testing.T) {
	svc := testAuthService()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	handler := api.DashboardGateMiddleware(svc)(next)

	// no cookie redirects to the login page
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))
	res := w.Result()
	if res.StatusCode != http.StatusFound {
		t.Fatalf("expected 302 without cookie, got %d", res.StatusCode)
	}
	if loc := res.Header.Get("Location"); loc != "/admin" {
		t.Fatalf("expected redirect to /admin, got %q", loc)
	}

	// expired token also redirects
	expired := auth.NewService(mock.NewMocks().Admins, "testsecret", -time.Minute)
	token, err := expired.IssueToken(&models.Admin{ID: 1, Email: "admin@akash.network", Name: "Admin"})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: api.AdminTokenCookie, Value: token})
	w2 := httptest.NewRecorder()
	handler.ServeHTTP(w2, req)
	if w2.Result().StatusCode != http.StatusFound {
		t.Fatalf("expected 302 for expired token, got %d", w2.Result().StatusCode)
	}

	// valid token passes through
	token2, err := svc.IssueToken(&models.Admin{ID: 1, Email: "admin@akash.network", Name: "Admin"})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	req3 := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req3.AddCookie(&http.Cookie{Name: api.AdminTokenCookie, Value: token2})
	w3 := httptest.NewRecorder()
	handler.ServeHTTP(w3, req3)
	if w3.Result().StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for valid token, got %d", w3.Result().StatusCode)
	}
}
