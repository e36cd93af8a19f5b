package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"taprobane/config"
	"taprobane/services"

	"github.com/gin-gonic/gin"
)

func protectedApp() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return router
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	config.App = &config.Config{JWTSecret: "test-secret", JWTExpiry: time.Hour}
	router := protectedApp()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", resp.Code)
	}
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	config.App = &config.Config{JWTSecret: "test-secret", JWTExpiry: time.Hour}
	router := protectedApp()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for non-bearer header, got %d", resp.Code)
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	config.App = &config.Config{JWTSecret: "test-secret", JWTExpiry: time.Hour}
	router := protectedApp()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for invalid token, got %d", resp.Code)
	}
}

func TestAuthMiddlewareForeignSignature(t *testing.T) {
	config.App = &config.Config{JWTSecret: "test-secret", JWTExpiry: time.Hour}
	router := protectedApp()

	token, err := services.GenerateToken(1, []byte("other-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for foreign signature, got %d", resp.Code)
	}
}
