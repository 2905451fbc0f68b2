package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/fleveque/research-service/internal/config"
)

// Go HTTP testing: httptest.NewRecorder() captures the response without starting
// a real server. Combined with gin's test mode, this lets you test handlers
// and middleware in isolation — fast and without network I/O.

func init() {
	gin.SetMode(gin.TestMode)
}

func testCORSConfig() config.CORSConfig {
	return config.CORSConfig{
		AllowOrigin:  "*",
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Authorization", "X-Requested-With"},
		MaxAge:       3600,
	}
}

func TestCORS_SimpleRequest(t *testing.T) {
	router := gin.New()
	router.Use(CORS(testCORSConfig()))
	router.POST("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	// No Origin header: the headers are still sent.
	req := httptest.NewRequest("POST", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	want := map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "GET, POST, OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type, Authorization, X-Requested-With",
		"Content-Type":                 "application/json",
	}
	for header, value := range want {
		if got := w.Header().Get(header); got != value {
			t.Errorf("%s: expected %q, got %q", header, value, got)
		}
	}
	if w.Header().Get("Access-Control-Max-Age") != "" {
		t.Error("expected no Access-Control-Max-Age on non-preflight response")
	}
}

func TestCORS_PreflightOptions(t *testing.T) {
	handlerCalled := false
	router := gin.New()
	router.Use(CORS(testCORSConfig()))
	router.Any("/test", func(c *gin.Context) {
		handlerCalled = true
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest("OPTIONS", "/test", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected 204 for preflight, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", w.Body.String())
	}
	if w.Header().Get("Access-Control-Max-Age") != "3600" {
		t.Errorf("expected max age 3600, got %q", w.Header().Get("Access-Control-Max-Age"))
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("expected Access-Control-Allow-Origin on preflight")
	}
	if handlerCalled {
		t.Error("expected preflight to skip the route handler")
	}
}
