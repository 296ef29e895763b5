package utils_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"restaurent-app-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := utils.HashPassword("correct horse battery")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse battery", hash)

	assert.True(t, utils.CheckPasswordHash("correct horse battery", hash))
	assert.False(t, utils.CheckPasswordHash("wrong password", hash))
}

func TestAuthMiddlewareSession(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(utils.AuthMiddleware())
	r.GET("/whoami", func(c *gin.Context) {
		session, ok := utils.SessionFromContext(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": session.ID, "role": session.Role, "branchId": session.BranchID})
	})

	token, err := utils.GenerateToken("user-1", "jdoe", "Jane Doe", "waiter", "branch-9")
	require.NoError(t, err)

	t.Run("valid token builds a session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":"user-1","role":"waiter","branchId":"branch-9"}`, w.Body.String())
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
