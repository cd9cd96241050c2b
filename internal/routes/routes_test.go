package routes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"taskboard/internal/repository"
)

func newEngine(t *testing.T, opts Options) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := repository.Open(repository.Options{Driver: "sqlite", DSN: ":memory:", LogLevel: "silent"})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return Register(db, opts)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	r := newEngine(t, Options{})
	w := serve(r, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestCORS_AllowsAnyOrigin(t *testing.T) {
	r := newEngine(t, Options{})

	req := httptest.NewRequest(http.MethodOptions, "/api/tasks/", nil)
	req.Header.Set("Origin", "http://client.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := serve(r, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected preflight 204, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard origin, got %q", got)
	}
}

func TestCORS_RestrictedOrigins(t *testing.T) {
	r := newEngine(t, Options{AllowOrigins: []string{"http://localhost:3000"}})

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/", nil)
	req.Header.Set("Origin", "http://evil.example")
	w := serve(r, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for unknown origin, got %d", w.Code)
	}
}

func TestRequestID(t *testing.T) {
	r := newEngine(t, Options{})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/api/tasks/", nil))
	if w.Header().Get(requestIDHeader) == "" {
		t.Fatalf("expected generated request id")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w = serve(r, req)
	if got := w.Header().Get(requestIDHeader); got != "abc-123" {
		t.Fatalf("expected echoed request id, got %q", got)
	}
}

func TestCleanAllIsNotAnID(t *testing.T) {
	r := newEngine(t, Options{})

	req := httptest.NewRequest(http.MethodPost, "/api/categories/", bytes.NewBufferString(`{"name":"Work"}`))
	req.Header.Set("Content-Type", "application/json")
	if w := serve(r, req); w.Code != http.StatusCreated {
		t.Fatalf("create category: %d %s", w.Code, w.Body.String())
	}
	req = httptest.NewRequest(http.MethodPost, "/api/tasks/", bytes.NewBufferString(`{"name":"t","category_id":1}`))
	req.Header.Set("Content-Type", "application/json")
	if w := serve(r, req); w.Code != http.StatusCreated {
		t.Fatalf("create task: %d %s", w.Code, w.Body.String())
	}

	w := serve(r, httptest.NewRequest(http.MethodDelete, "/api/tasks/clean-all/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from clean-all, got %d: %s", w.Code, w.Body.String())
	}
	w = serve(r, httptest.NewRequest(http.MethodGet, "/api/tasks/", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 after clean-all, got %d", w.Code)
	}
}
