package controller_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/InnovativeSphere/jewel-dashboard/internal/constant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonCreateEndpoint(t *testing.T) {
	srv := newTestServer(t)
	token := srv.token(t)

	rec, resp := srv.do(t, http.MethodPost, "/api/people", token, map[string]any{
		"first_name": "Jane",
		"last_name":  "Doe",
		"type":       constant.PersonTypeVolunteer,
		"bio":        "Joined in 2020",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Person created", resp.Message)

	rec, resp = srv.do(t, http.MethodGet, "/api/people", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listed struct {
		People []struct {
			FirstName string `json:"first_name"`
			IsActive  *bool  `json:"is_active"`
		} `json:"people"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &listed))
	require.Len(t, listed.People, 1)
	assert.Equal(t, "Jane", listed.People[0].FirstName)
	require.NotNil(t, listed.People[0].IsActive)
	assert.True(t, *listed.People[0].IsActive)
}

func TestPersonCreateMissingFields(t *testing.T) {
	srv := newTestServer(t)

	rec, resp := srv.do(t, http.MethodPost, "/api/people", srv.token(t), map[string]any{
		"first_name": "Jane",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "first_name, last_name, and type are required", resp.Message)
}

func TestPersonUpdateAndDeleteEndpoint(t *testing.T) {
	srv := newTestServer(t)
	token := srv.token(t)

	_, resp := srv.do(t, http.MethodPost, "/api/people", token, map[string]any{
		"first_name": "Jane",
		"last_name":  "Doe",
		"type":       constant.PersonTypeVolunteer,
	})
	var created struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &created))

	rec, _ := srv.do(t, http.MethodPut, "/api/people", token, map[string]any{
		"id":        created.ID,
		"is_active": false,
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, resp = srv.do(t, http.MethodPut, "/api/people", token, map[string]any{"id": 9999, "bio": "x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Person not found or nothing to update", resp.Message)

	rec, _ = srv.do(t, http.MethodDelete, "/api/people", token, map[string]any{"id": created.ID})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = srv.do(t, http.MethodDelete, "/api/people", token, map[string]any{"id": created.ID})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
