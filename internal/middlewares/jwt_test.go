package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nasir9967/skillbazaar/internal/middlewares"
	"github.com/nasir9967/skillbazaar/pkg/auth"
)

func newRouter(mgr *auth.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	secured := r.Group("", middlewares.JWTAuth(mgr))
	secured.GET("/me", func(c *gin.Context) {
		sub, _ := c.Get("sub")
		c.JSON(http.StatusOK, gin.H{"sub": sub})
	})
	secured.GET("/business-only", middlewares.RequireRole("business"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestJWTAuth(t *testing.T) {
	mgr := auth.NewManager("secret", time.Hour)
	r := newRouter(mgr)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	tok, err := mgr.CreateAccessToken("u-1", "customer", "c@x.in")
	require.NoError(t, err)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u-1")

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	mgr := auth.NewManager("secret", time.Hour)
	r := newRouter(mgr)

	custTok, err := mgr.CreateAccessToken("u-1", "customer", "c@x.in")
	require.NoError(t, err)
	bizTok, err := mgr.CreateAccessToken("u-2", "business", "b@x.in")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/business-only", nil)
	req.Header.Set("Authorization", "Bearer "+custTok)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/business-only", nil)
	req.Header.Set("Authorization", "Bearer "+bizTok)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
