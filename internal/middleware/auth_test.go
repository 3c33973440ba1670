package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/wellbeing/backend/internal/apierror"
	"github.com/JonnyWalker81/wellbeing/backend/internal/logger"
	"github.com/JonnyWalker81/wellbeing/backend/pkg/supabase"
)

type mockVerifier struct {
	tokens map[string]string // token -> user id
	err    error
	calls  int
}

func (m *mockVerifier) VerifyToken(ctx context.Context, token string) (*supabase.User, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	if id, ok := m.tokens[token]; ok {
		return &supabase.User{ID: id, Email: id + "@example.com"}, nil
	}
	return nil, supabase.ErrInvalidToken
}

func newAuthRouter(v TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Logger(logger.NewNop()), Auth(v))
	router.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":     c.GetString(UserIDKey),
			"context_uid": logger.UserIDFromContext(c.Request.Context()),
		})
	})
	return router
}

func TestAuth(t *testing.T) {
	verifier := &mockVerifier{tokens: map[string]string{"good": "user-1"}}
	router := newAuthRouter(verifier)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid token", "Bearer good", http.StatusOK},
		{"lowercase scheme", "bearer good", http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic good", http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"rejected token", "Bearer bad", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if tt.wantStatus == http.StatusUnauthorized {
				if ct := w.Header().Get("Content-Type"); ct != apierror.ContentTypeProblemJSON {
					t.Errorf("Expected problem+json, got %q", ct)
				}
			}
		})
	}
}

func TestAuthVerifierFailures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
	}{
		{"wrapped invalid token", fmt.Errorf("%w: response has no user id", supabase.ErrInvalidToken), http.StatusUnauthorized, apierror.TypeUnauthorized},
		{"auth service error", &supabase.Error{StatusCode: http.StatusServiceUnavailable, Body: "down"}, http.StatusBadGateway, apierror.TypeBadGateway},
		{"network error", errors.New("dial tcp: connection refused"), http.StatusBadGateway, apierror.TypeBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAuthRouter(&mockVerifier{err: tt.err})

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			req.Header.Set("Authorization", "Bearer good")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("Expected status %d, got %d", tt.wantStatus, w.Code)
			}
			var problem apierror.ProblemDetails
			if err := json.Unmarshal(w.Body.Bytes(), &problem); err != nil {
				t.Fatalf("Expected problem JSON, got %s", w.Body.String())
			}
			if problem.Type != tt.wantType {
				t.Errorf("Expected %s, got %s", tt.wantType, problem.Type)
			}
		})
	}
}

func TestAuthSetsUserInContext(t *testing.T) {
	router := newAuthRouter(&mockVerifier{tokens: map[string]string{"good": "user-1"}})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer good")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	body := w.Body.String()
	if body != `{"context_uid":"user-1","user_id":"user-1"}` {
		t.Errorf("Unexpected body %s", body)
	}
}

func TestAuthDoesNotCallVerifierWithoutToken(t *testing.T) {
	verifier := &mockVerifier{}
	router := newAuthRouter(verifier)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", w.Code)
	}
	if verifier.calls != 0 {
		t.Errorf("Expected no verifier calls, got %d", verifier.calls)
	}
}

func TestLoggerRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Logger(logger.NewNop()))
	router.GET("/id", func(c *gin.Context) {
		c.String(http.StatusOK, logger.RequestIDFromContext(c.Request.Context()))
	})

	req := httptest.NewRequest(http.MethodGet, "/id", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Body.String() != "req-42" {
		t.Errorf("Expected incoming request ID to be kept, got %q", w.Body.String())
	}
	if w.Header().Get(RequestIDHeader) != "req-42" {
		t.Errorf("Expected request ID echoed, got %q", w.Header().Get(RequestIDHeader))
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/id", nil))
	if len(w.Body.String()) != 36 {
		t.Errorf("Expected generated UUID, got %q", w.Body.String())
	}
}

func TestSecurityHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, production := range []bool{false, true} {
		router := gin.New()
		router.Use(SecurityHeaders(production))
		router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		if w.Header().Get("X-Content-Type-Options") != "nosniff" {
			t.Error("Expected nosniff header")
		}
		if w.Header().Get("Cache-Control") != "no-store" {
			t.Errorf("Expected no-store, got %q", w.Header().Get("Cache-Control"))
		}
		hasHSTS := w.Header().Get("Strict-Transport-Security") != ""
		if hasHSTS != production {
			t.Errorf("Expected HSTS present=%v, got %v", production, hasHSTS)
		}
	}
}
