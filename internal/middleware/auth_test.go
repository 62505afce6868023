package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"labelmedix/internal/domain"
	"labelmedix/internal/middleware"
	"labelmedix/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubAuthService validates exactly one token string.
type stubAuthService struct {
	token  string
	claims *service.Claims
}

func (s *stubAuthService) Login(context.Context, service.LoginInput) (*service.TokenPair, error) {
	return nil, domain.ErrUnauthorized
}

func (s *stubAuthService) RefreshToken(context.Context, string) (*service.TokenPair, error) {
	return nil, domain.ErrUnauthorized
}

func (s *stubAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	if tokenString == s.token {
		return s.claims, nil
	}
	return nil, domain.ErrUnauthorized
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	userID := uuid.New()
	auth := &stubAuthService{
		token: "valid-token",
		claims: &service.Claims{
			UserID: userID,
			Email:  "user@test.com",
			Role:   domain.RoleEditor,
		},
	}

	r := gin.New()
	r.Use(middleware.AuthMiddleware(auth))
	r.GET("/test", func(c *gin.Context) {
		uid, _ := middleware.GetUserID(c)
		c.JSON(http.StatusOK, gin.H{
			"user_id": uid,
			"role":    middleware.GetRole(c),
		})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("Authorization", "Bearer valid-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, userID.String(), resp["user_id"])
	assert.Equal(t, "editor", resp["role"])
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	r := gin.New()
	r.Use(middleware.AuthMiddleware(&stubAuthService{}))
	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	r := gin.New()
	r.Use(middleware.AuthMiddleware(&stubAuthService{token: "other"}))
	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("Authorization", "Bearer expired-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	newRouter := func(role domain.UserRole, required ...domain.UserRole) *gin.Engine {
		r := gin.New()
		r.Use(func(c *gin.Context) {
			c.Set(middleware.ContextKeyRole, string(role))
		})
		r.Use(middleware.RequireRole(required...))
		r.GET("/test", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
		return r
	}

	t.Run("allowed", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
		newRouter(domain.RoleAdmin, domain.RoleAdmin).ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("forbidden", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
		newRouter(domain.RoleEditor, domain.RoleAdmin).ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("missing_role", func(t *testing.T) {
		r := gin.New()
		r.Use(middleware.RequireRole(domain.RoleAdmin))
		r.GET("/test", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
