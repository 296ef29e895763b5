package controllers_test

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"restaurent-app-backend/controllers"
	"restaurent-app-backend/services"
	"restaurent-app-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The menu and notice-board endpoints never touch the database, so they
// can be exercised end to end through the real auth middleware.
func setupNotesRouter(t *testing.T, board *services.NoticeBoard) (*gin.Engine, string) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	gin.SetMode(gin.TestMode)
	r := gin.New()

	noteController := controllers.NoteController{Board: board}

	v1 := r.Group("/v1")
	v1.Use(utils.AuthMiddleware())
	v1.GET("/menu", controllers.GetMenu)
	v1.GET("/supervisor-notes", noteController.GetNotes)
	v1.POST("/supervisor-notes/:id/resolve", noteController.ResolveNote)

	token, err := utils.GenerateToken("user-1", "boss", "Big Boss", "manager", "")
	require.NoError(t, err)
	return r, token
}

func doJSON(r *gin.Engine, method, path, token string) (int, map[string]interface{}) {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &body)
	return w.Code, body
}

func TestGetMenu(t *testing.T) {
	board := services.NewNoticeBoardWithRand(rand.New(rand.NewSource(1)))
	r, token := setupNotesRouter(t, board)

	code, body := doJSON(r, http.MethodGet, "/v1/menu", token)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, true, body["success"])

	items, ok := body["data"].([]interface{})
	require.True(t, ok)
	require.Len(t, items, 10)
	for _, raw := range items {
		item := raw.(map[string]interface{})
		assert.NotEmpty(t, item["itemName"])
		assert.EqualValues(t, 0, item["quantity"])
	}
}

func TestSupervisorNotesFlow(t *testing.T) {
	board := services.NewNoticeBoardWithRand(rand.New(rand.NewSource(1)))
	r, token := setupNotesRouter(t, board)

	code, _ := doJSON(r, http.MethodGet, "/v1/supervisor-notes", "")
	assert.Equal(t, http.StatusUnauthorized, code)

	code, body := doJSON(r, http.MethodGet, "/v1/supervisor-notes", token)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, true, body["success"])
	notes := body["data"].([]interface{})
	require.NotEmpty(t, notes)

	code, body = doJSON(r, http.MethodPost, "/v1/supervisor-notes/nope/resolve", token)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, body["success"])

	for _, raw := range notes {
		note := raw.(map[string]interface{})
		code, body = doJSON(r, http.MethodPost, "/v1/supervisor-notes/"+note["id"].(string)+"/resolve", token)
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, true, body["success"])
	}

	// Emptied board reports completion.
	code, body = doJSON(r, http.MethodGet, "/v1/supervisor-notes", token)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, true, body["success"])
	assert.Equal(t, services.AllResolvedMessage, body["message"])
	assert.Empty(t, body["data"])
}
