package middleware_test

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"labelmedix/internal/middleware"
)

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/projects", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	r.ServeHTTP(w, req)

	id := w.Header().Get("X-Request-ID")
	_, err := uuid.Parse(id)
	assert.NoError(t, err, "generated request ID must be a UUID")
}

func TestRequestID_KeepsCallerSupplied(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/projects", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	req.Header.Set("X-Request-ID", "import-batch-42")
	r.ServeHTTP(w, req)

	assert.Equal(t, "import-batch-42", w.Header().Get("X-Request-ID"))
}

func TestLogger_LogsRoutePatternAndUser(t *testing.T) {
	var buf bytes.Buffer
	orig := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(orig)

	userID := uuid.New()
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger())
	r.GET("/projects/:id", func(c *gin.Context) {
		c.Set(middleware.ContextKeyUserID, userID)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/projects/"+uuid.New().String(), nil)
	r.ServeHTTP(w, req)

	line := buf.String()
	assert.Contains(t, line, "route=/projects/:id", "raw UUIDs must not appear as the route")
	assert.Contains(t, line, "user="+userID.String())
	assert.Contains(t, line, "status=200")
}

func TestLogger_AnonymousRequest(t *testing.T) {
	var buf bytes.Buffer
	orig := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(orig)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger())
	r.POST("/auth/login", func(c *gin.Context) { c.Status(http.StatusUnauthorized) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	r.ServeHTTP(w, req)

	line := buf.String()
	assert.Contains(t, line, "user=-")
	assert.Contains(t, line, "status=401")
}
