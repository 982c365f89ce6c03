package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggingMiddleware_CapturesStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	rec := httptest.NewRecorder()

	LoggingMiddleware(logger)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Contains(t, buf.String(), "status=418")
	assert.Contains(t, buf.String(), "method=GET")
}

func TestLoggingMiddleware_DefaultStatusOK(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	LoggingMiddleware(logger)(next).ServeHTTP(rec, req)

	assert.Contains(t, buf.String(), "status=200")
}

func TestLoggingWithSkip(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	mw := LoggingWithSkip(logger, []string{"/api/v1/health"})(next)

	// Health check не попадает в лог
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	mw.ServeHTTP(httptest.NewRecorder(), req)
	assert.Empty(t, buf.String())

	// Остальные пути логируются
	req = httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	mw.ServeHTTP(httptest.NewRecorder(), req)
	assert.Contains(t, buf.String(), "/api/v1/cart")
}
