package controller

import (
	"errors"
	"net/http"

	"github.com/InnovativeSphere/jewel-dashboard/internal/model"
	"github.com/InnovativeSphere/jewel-dashboard/internal/repository"
	"github.com/InnovativeSphere/jewel-dashboard/internal/util"
	"github.com/gin-gonic/gin"
)

type PersonController struct {
	*baseController
}

func (pc PersonController) List(ctx *gin.Context) {
	people, err := pc.app.Repository.Person.GetAll(ctx, nil)
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Internal Server Error", nil, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"people": people})
}

func (pc PersonController) Create(ctx *gin.Context) {
	var body model.Person
	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	// Required-field enforcement for people lives in the repository.
	id, err := pc.app.Repository.Person.Create(ctx, nil, &body)
	if err != nil {
		if errors.Is(err, repository.ErrPersonFieldsRequired) {
			util.ResponseFailed(ctx, http.StatusBadRequest, err.Error(), util.GenerateErrorMessages(err), nil)
			return
		}
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Internal Server Error", nil, nil)
		return
	}

	util.ResponseCreated(ctx, "Person created", gin.H{"id": id})
}

func (pc PersonController) Update(ctx *gin.Context) {
	type Request struct {
		ID uint `json:"id" binding:"required"`
		repository.PersonUpdateParams
	}
	var body Request

	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Person ID is required", util.GenerateErrorMessages(err, map[string]string{"ID": "id"}), nil)
		return
	}

	affected, err := pc.app.Repository.Person.Update(ctx, nil, body.ID, body.PersonUpdateParams)
	if err != nil && !errors.Is(err, repository.ErrNothingToUpdate) {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Internal Server Error", nil, nil)
		return
	}
	if affected == 0 {
		util.ResponseFailed(ctx, http.StatusNotFound, "Person not found or nothing to update", nil, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"affectedRows": affected})
}

func (pc PersonController) Delete(ctx *gin.Context) {
	type Request struct {
		ID uint `json:"id" binding:"required"`
	}
	var body Request

	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Person ID is required", util.GenerateErrorMessages(err, map[string]string{"ID": "id"}), nil)
		return
	}

	affected, err := pc.app.Repository.Person.Delete(ctx, nil, body.ID)
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Internal Server Error", nil, nil)
		return
	}
	if affected == 0 {
		util.ResponseFailed(ctx, http.StatusNotFound, "Person not found", nil, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"affectedRows": affected})
}
