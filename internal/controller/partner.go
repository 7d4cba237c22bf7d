package controller

import (
	"errors"
	"net/http"

	"github.com/InnovativeSphere/jewel-dashboard/internal/model"
	"github.com/InnovativeSphere/jewel-dashboard/internal/repository"
	"github.com/InnovativeSphere/jewel-dashboard/internal/util"
	"github.com/gin-gonic/gin"
)

type PartnerController struct {
	*baseController
}

func (pc PartnerController) List(ctx *gin.Context) {
	partners, err := pc.app.Repository.Partner.GetAll(ctx, nil)
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Internal Server Error", nil, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"partners": partners})
}

func (pc PartnerController) Create(ctx *gin.Context) {
	type Request struct {
		Name       string  `json:"name" binding:"required,strNotEmpty"`
		LogoURL    string  `json:"logo_url" binding:"required"`
		WebsiteURL *string `json:"website_url"`
	}
	var body Request

	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "name and logo_url are required",
			util.GenerateErrorMessages(err, map[string]string{"Name": "name", "LogoURL": "logo_url"}), nil)
		return
	}

	id, err := pc.app.Repository.Partner.Create(ctx, nil, &model.Partner{
		Name:       body.Name,
		LogoURL:    body.LogoURL,
		WebsiteURL: body.WebsiteURL,
	})
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Internal Server Error", nil, nil)
		return
	}

	util.ResponseCreated(ctx, "Partner added", gin.H{"id": id})
}

func (pc PartnerController) Update(ctx *gin.Context) {
	type Request struct {
		ID uint `json:"id" binding:"required"`
		repository.PartnerUpdateParams
	}
	var body Request

	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Partner ID is required", util.GenerateErrorMessages(err, map[string]string{"ID": "id"}), nil)
		return
	}

	affected, err := pc.app.Repository.Partner.Update(ctx, nil, body.ID, body.PartnerUpdateParams)
	if err != nil && !errors.Is(err, repository.ErrNothingToUpdate) {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Internal Server Error", nil, nil)
		return
	}
	if affected == 0 {
		util.ResponseFailed(ctx, http.StatusNotFound, "Partner not found or nothing to update", nil, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"affectedRows": affected})
}

func (pc PartnerController) Delete(ctx *gin.Context) {
	type Request struct {
		ID uint `json:"id" binding:"required"`
	}
	var body Request

	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Partner ID is required", util.GenerateErrorMessages(err, map[string]string{"ID": "id"}), nil)
		return
	}

	affected, err := pc.app.Repository.Partner.Delete(ctx, nil, body.ID)
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Internal Server Error", nil, nil)
		return
	}
	if affected == 0 {
		util.ResponseFailed(ctx, http.StatusNotFound, "Partner not found", nil, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"affectedRows": affected})
}
