package controller

import (
	"errors"
	"net/http"

	"github.com/InnovativeSphere/jewel-dashboard/internal/model"
	"github.com/InnovativeSphere/jewel-dashboard/internal/repository"
	"github.com/InnovativeSphere/jewel-dashboard/internal/util"
	"github.com/gin-gonic/gin"
)

type ProjectController struct {
	*baseController
}

func (pc ProjectController) List(ctx *gin.Context) {
	projects, err := pc.app.Repository.Project.GetAll(ctx, nil)
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Internal Server Error", nil, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"projects": projects})
}

func (pc ProjectController) Create(ctx *gin.Context) {
	type Request struct {
		Title       string  `json:"title" binding:"required,strNotEmpty"`
		Description *string `json:"description"`
		StartDate   *string `json:"start_date"`
		EndDate     *string `json:"end_date"`
	}
	var body Request

	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err, map[string]string{"Title": "title"}), nil)
		return
	}

	id, err := pc.app.Repository.Project.Create(ctx, nil, &model.Project{
		Title:       body.Title,
		Description: body.Description,
		StartDate:   body.StartDate,
		EndDate:     body.EndDate,
	})
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Internal Server Error", nil, nil)
		return
	}

	util.ResponseCreated(ctx, "Project created", gin.H{"id": id})
}

func (pc ProjectController) Update(ctx *gin.Context) {
	type Request struct {
		ID uint `json:"id" binding:"required"`
		repository.ProjectUpdateParams
	}
	var body Request

	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Project ID is required", util.GenerateErrorMessages(err, map[string]string{"ID": "id"}), nil)
		return
	}

	affected, err := pc.app.Repository.Project.Update(ctx, nil, body.ID, body.ProjectUpdateParams)
	if err != nil && !errors.Is(err, repository.ErrNothingToUpdate) {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Internal Server Error", nil, nil)
		return
	}
	if affected == 0 {
		util.ResponseFailed(ctx, http.StatusNotFound, "Project not found or nothing to update", nil, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"affectedRows": affected})
}

func (pc ProjectController) Delete(ctx *gin.Context) {
	type Request struct {
		ID uint `json:"id" binding:"required"`
	}
	var body Request

	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Project ID is required", util.GenerateErrorMessages(err, map[string]string{"ID": "id"}), nil)
		return
	}

	affected, err := pc.app.Repository.Project.Delete(ctx, nil, body.ID)
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Internal Server Error", nil, nil)
		return
	}
	if affected == 0 {
		util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", nil, nil)
		return
	}

	if user, err := pc.getAuthUser(ctx); err == nil {
		pc.app.Logger.Infof("Project %d deleted by user %d", body.ID, user.ID)
	}

	util.ResponseSuccess(ctx, gin.H{"affectedRows": affected})
}
