package controller

import (
	"errors"
	"net/http"

	"github.com/InnovativeSphere/jewel-dashboard/internal/model"
	"github.com/InnovativeSphere/jewel-dashboard/internal/repository"
	"github.com/InnovativeSphere/jewel-dashboard/internal/util"
	"github.com/gin-gonic/gin"
)

type ProjectPersonController struct {
	*baseController
}

func (lc ProjectPersonController) List(ctx *gin.Context) {
	filter := repository.ProjectPersonFilter{
		ProjectID: queryUint(ctx, "project_id"),
		PersonID:  queryUint(ctx, "person_id"),
	}

	links, err := lc.app.Repository.ProjectPerson.GetAll(ctx, nil, filter)
	if err != nil {
		lc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Internal Server Error", nil, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"project_people": links})
}

func (lc ProjectPersonController) Create(ctx *gin.Context) {
	type Request struct {
		ProjectID     uint    `json:"project_id" binding:"required"`
		PersonID      uint    `json:"person_id" binding:"required"`
		RoleInProject *string `json:"role_in_project"`
	}
	var body Request

	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "project_id and person_id are required",
			util.GenerateErrorMessages(err, map[string]string{"ProjectID": "project_id", "PersonID": "person_id"}), nil)
		return
	}

	id, err := lc.app.Repository.ProjectPerson.Create(ctx, nil, &model.ProjectPerson{
		ProjectID:     body.ProjectID,
		PersonID:      body.PersonID,
		RoleInProject: body.RoleInProject,
	})
	if err != nil {
		lc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Internal Server Error", nil, nil)
		return
	}

	util.ResponseCreated(ctx, "Person added to project", gin.H{"id": id})
}

func (lc ProjectPersonController) Update(ctx *gin.Context) {
	type Request struct {
		ID uint `json:"id" binding:"required"`
		repository.ProjectPersonUpdateParams
	}
	var body Request

	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Link ID is required", util.GenerateErrorMessages(err, map[string]string{"ID": "id"}), nil)
		return
	}

	affected, err := lc.app.Repository.ProjectPerson.Update(ctx, nil, body.ID, body.ProjectPersonUpdateParams)
	if err != nil && !errors.Is(err, repository.ErrNothingToUpdate) {
		lc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Internal Server Error", nil, nil)
		return
	}
	if affected == 0 {
		util.ResponseFailed(ctx, http.StatusNotFound, "Link not found or nothing to update", nil, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"affectedRows": affected})
}

func (lc ProjectPersonController) Delete(ctx *gin.Context) {
	type Request struct {
		ID uint `json:"id" binding:"required"`
	}
	var body Request

	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Link ID is required", util.GenerateErrorMessages(err, map[string]string{"ID": "id"}), nil)
		return
	}

	affected, err := lc.app.Repository.ProjectPerson.Delete(ctx, nil, body.ID)
	if err != nil {
		lc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Internal Server Error", nil, nil)
		return
	}
	if affected == 0 {
		util.ResponseFailed(ctx, http.StatusNotFound, "Link not found", nil, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"affectedRows": affected})
}
