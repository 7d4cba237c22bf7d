package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/InnovativeSphere/jewel-dashboard/internal/repository"
	"github.com/InnovativeSphere/jewel-dashboard/internal/util"
	"github.com/gin-gonic/gin"
)

type ProjectImageController struct {
	*baseController
}

// imageList accepts either a single image object or an array of them, so the
// photo gallery can post one or many in the same call.
type imageList []repository.ImageInput

func (l *imageList) UnmarshalJSON(data []byte) error {
	var many []repository.ImageInput
	if err := json.Unmarshal(data, &many); err == nil {
		*l = many
		return nil
	}

	var one repository.ImageInput
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}

	*l = imageList{one}
	return nil
}

func (ic ProjectImageController) List(ctx *gin.Context) {
	projectID := queryUint(ctx, "project_id")
	images, err := ic.app.Repository.ProjectImage.GetAll(ctx, nil, projectID)
	if err != nil {
		ic.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Internal Server Error", nil, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"images": images})
}

func (ic ProjectImageController) Create(ctx *gin.Context) {
	type Request struct {
		ProjectID uint      `json:"project_id"`
		Images    imageList `json:"images"`
	}
	var body Request

	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if body.ProjectID == 0 || len(body.Images) == 0 {
		util.ResponseFailed(ctx, http.StatusBadRequest, "project_id and images are required", nil, nil)
		return
	}
	for _, img := range body.Images {
		if strings.TrimSpace(img.ImageURL) == "" {
			util.ResponseFailed(ctx, http.StatusBadRequest, "image_url is required", nil, nil)
			return
		}
	}

	added, err := ic.app.Repository.ProjectImage.AddToProject(ctx, nil, body.ProjectID, body.Images)
	if err != nil {
		ic.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Internal Server Error", nil, nil)
		return
	}

	util.ResponseCreated(ctx, fmt.Sprintf("%d image(s) added to project", added), gin.H{"affectedRows": added})
}

func (ic ProjectImageController) Update(ctx *gin.Context) {
	type Request struct {
		ID uint `json:"id" binding:"required"`
		repository.ProjectImageUpdateParams
	}
	var body Request

	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Image ID is required", util.GenerateErrorMessages(err, map[string]string{"ID": "id"}), nil)
		return
	}

	affected, err := ic.app.Repository.ProjectImage.Update(ctx, nil, body.ID, body.ProjectImageUpdateParams)
	if err != nil && !errors.Is(err, repository.ErrNothingToUpdate) {
		ic.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Internal Server Error", nil, nil)
		return
	}
	if affected == 0 {
		util.ResponseFailed(ctx, http.StatusNotFound, "Image not found or nothing to update", nil, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"affectedRows": affected})
}

// Delete accepts the id in the body (axios style) or as a query parameter.
func (ic ProjectImageController) Delete(ctx *gin.Context) {
	type Request struct {
		ID uint `json:"id"`
	}
	var body Request
	_ = ctx.ShouldBindJSON(&body)

	id := body.ID
	if id == 0 {
		id = queryUint(ctx, "id")
	}
	if id == 0 {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Image ID is required", nil, nil)
		return
	}

	affected, err := ic.app.Repository.ProjectImage.Delete(ctx, nil, id)
	if err != nil {
		ic.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Internal Server Error", nil, nil)
		return
	}
	if affected == 0 {
		util.ResponseFailed(ctx, http.StatusNotFound, "Image not found", nil, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"affectedRows": affected})
}
