package controller_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/InnovativeSphere/jewel-dashboard/internal/constant"
	"github.com/InnovativeSphere/jewel-dashboard/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPerson(t *testing.T, srv *testServer, firstName, lastName string) uint {
	t.Helper()

	id, err := srv.repo.Person.Create(context.Background(), nil, &model.Person{
		FirstName: firstName,
		LastName:  lastName,
		Type:      constant.PersonTypeVolunteer,
	})
	require.NoError(t, err)
	return id
}

func TestProjectPersonLinkEndpoint(t *testing.T) {
	srv := newTestServer(t)
	token := srv.token(t)

	projectID := seedProject(t, srv, "Cleanup")
	personID := seedPerson(t, srv, "John", "Smith")

	rec, resp := srv.do(t, http.MethodPost, "/api/project_people", token, map[string]any{
		"project_id":      projectID,
		"person_id":       personID,
		"role_in_project": constant.PersonTypeVolunteer,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Person added to project", resp.Message)

	rec, resp = srv.do(t, http.MethodGet, fmt.Sprintf("/api/project_people?project_id=%d", projectID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listed struct {
		ProjectPeople []struct {
			ProjectTitle string `json:"project_title"`
			FirstName    string `json:"first_name"`
			LastName     string `json:"last_name"`
		} `json:"project_people"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &listed))
	require.Len(t, listed.ProjectPeople, 1)
	assert.Equal(t, "Cleanup", listed.ProjectPeople[0].ProjectTitle)
	assert.Equal(t, "John", listed.ProjectPeople[0].FirstName)
}

func TestProjectPersonLinkValidation(t *testing.T) {
	srv := newTestServer(t)

	rec, resp := srv.do(t, http.MethodPost, "/api/project_people", srv.token(t), map[string]any{
		"project_id": 1,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "project_id and person_id are required", resp.Message)
}

func TestProjectPersonUpdateAndUnlinkEndpoint(t *testing.T) {
	srv := newTestServer(t)
	token := srv.token(t)

	projectID := seedProject(t, srv, "Cleanup")
	personID := seedPerson(t, srv, "John", "Smith")

	_, resp := srv.do(t, http.MethodPost, "/api/project_people", token, map[string]any{
		"project_id": projectID,
		"person_id":  personID,
	})
	var created struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &created))

	rec, _ := srv.do(t, http.MethodPut, "/api/project_people", token, map[string]any{
		"id":              created.ID,
		"role_in_project": constant.PersonTypeSupervisor,
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, resp = srv.do(t, http.MethodPut, "/api/project_people", token, map[string]any{"id": created.ID})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Link not found or nothing to update", resp.Message)

	rec, _ = srv.do(t, http.MethodDelete, "/api/project_people", token, map[string]any{"id": created.ID})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = srv.do(t, http.MethodDelete, "/api/project_people", token, map[string]any{"id": created.ID})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
