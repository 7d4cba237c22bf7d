package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectEndpointsRequireAuth(t *testing.T) {
	srv := newTestServer(t)

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete} {
		rec, resp := srv.do(t, method, "/api/projects", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, method)
		assert.False(t, resp.Success)
		assert.Equal(t, "Unauthorized", resp.Message)
	}

	// A malformed token is rejected the same way.
	rec, _ := srv.do(t, http.MethodGet, "/api/projects", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProjectTokenCookieAccepted(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: srv.token(t)})

	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProjectCreateAndList(t *testing.T) {
	srv := newTestServer(t)
	token := srv.token(t)

	rec, resp := srv.do(t, http.MethodPost, "/api/projects", token, map[string]any{
		"title":       "School build",
		"description": "New classrooms",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, resp.Success)

	var created struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &created))
	assert.NotZero(t, created.ID)

	rec, resp = srv.do(t, http.MethodGet, "/api/projects", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listed struct {
		Projects []struct {
			ID    uint   `json:"id"`
			Title string `json:"title"`
		} `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &listed))
	require.Len(t, listed.Projects, 1)
	assert.Equal(t, "School build", listed.Projects[0].Title)
}

func TestProjectCreateValidation(t *testing.T) {
	srv := newTestServer(t)
	token := srv.token(t)

	rec, resp := srv.do(t, http.MethodPost, "/api/projects", token, map[string]any{"description": "no title"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)

	// A whitespace-only title fails too.
	rec, _ = srv.do(t, http.MethodPost, "/api/projects", token, map[string]any{"title": "   "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProjectUpdate(t *testing.T) {
	srv := newTestServer(t)
	token := srv.token(t)

	_, resp := srv.do(t, http.MethodPost, "/api/projects", token, map[string]any{"title": "before"})
	var created struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &created))

	rec, resp := srv.do(t, http.MethodPut, "/api/projects", token, map[string]any{
		"id":    created.ID,
		"title": "after",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated struct {
		AffectedRows int64 `json:"affectedRows"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &updated))
	assert.Equal(t, int64(1), updated.AffectedRows)

	// Missing id is a validation error, not a no-op.
	rec, _ = srv.do(t, http.MethodPut, "/api/projects", token, map[string]any{"title": "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Unknown id and empty field set both map to 404.
	rec, _ = srv.do(t, http.MethodPut, "/api/projects", token, map[string]any{"id": 9999, "title": "x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, resp = srv.do(t, http.MethodPut, "/api/projects", token, map[string]any{"id": created.ID})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Project not found or nothing to update", resp.Message)
}

func TestProjectDelete(t *testing.T) {
	srv := newTestServer(t)
	token := srv.token(t)

	_, resp := srv.do(t, http.MethodPost, "/api/projects", token, map[string]any{"title": "doomed"})
	var created struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &created))

	rec, _ := srv.do(t, http.MethodDelete, "/api/projects", token, map[string]any{"id": created.ID})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, resp = srv.do(t, http.MethodDelete, "/api/projects", token, map[string]any{"id": created.ID})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Project not found", resp.Message)
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	rec, resp := srv.do(t, http.MethodPatch, "/api/projects", srv.token(t), nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, POST, PUT, DELETE", rec.Header().Get("Allow"))
	assert.Equal(t, "Method PATCH Not Allowed", resp.Message)
}

func TestIndexRoute(t *testing.T) {
	srv := newTestServer(t)

	rec, resp := srv.do(t, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}
