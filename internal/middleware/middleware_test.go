package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func apiKeyRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(APIKey())
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"key": c.GetString("apiKey")})
	})
	return router
}

// TestAPIKey_Header reads the key from X-API-Key
func TestAPIKey_Header(t *testing.T) {
	router := apiKeyRouter()

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("X-API-Key", "sk-test-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if want := `"key":"sk-test-123"`; !strings.Contains(w.Body.String(), want) {
		t.Fatalf("expected %s in body, got %s", want, w.Body.String())
	}
}

// TestAPIKey_BearerFallback reads the key from Authorization
func TestAPIKey_BearerFallback(t *testing.T) {
	router := apiKeyRouter()

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer sk-test-456")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if !strings.Contains(w.Body.String(), `"key":"sk-test-456"`) {
		t.Fatalf("expected bearer key in body, got %s", w.Body.String())
	}
}

// TestAPIKey_MissingKeyPassesThrough never blocks the request
func TestAPIKey_MissingKeyPassesThrough(t *testing.T) {
	router := apiKeyRouter()

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 without key, got %d", w.Code)
	}
}
