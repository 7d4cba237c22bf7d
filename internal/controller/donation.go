package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/InnovativeSphere/jewel-dashboard/internal/model"
	"github.com/InnovativeSphere/jewel-dashboard/internal/repository"
	"github.com/InnovativeSphere/jewel-dashboard/internal/util"
	"github.com/gin-gonic/gin"
)

type DonationController struct {
	*baseController
}

// List serves the plain donation list (optionally filtered by project_id) and
// the two aggregate variants selected with ?custom=.
func (dc DonationController) List(ctx *gin.Context) {
	switch ctx.Query("custom") {
	case "group_by_amount":
		buckets, err := dc.app.Repository.Donation.GroupByAmountRange(ctx, nil)
		if err != nil {
			dc.app.Logger.Error(err)
			util.ResponseFailed(ctx, http.StatusInternalServerError, "Internal Server Error", nil, nil)
			return
		}
		util.ResponseSuccess(ctx, gin.H{"donations": buckets})
		return
	case "total_per_project":
		totals, err := dc.app.Repository.Donation.TotalPerProject(ctx, nil)
		if err != nil {
			dc.app.Logger.Error(err)
			util.ResponseFailed(ctx, http.StatusInternalServerError, "Internal Server Error", nil, nil)
			return
		}
		util.ResponseSuccess(ctx, gin.H{"donations": totals})
		return
	}

	projectID := queryUint(ctx, "project_id")
	donations, err := dc.app.Repository.Donation.GetAll(ctx, nil, projectID)
	if err != nil {
		dc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Internal Server Error", nil, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"donations": donations})
}

func (dc DonationController) Create(ctx *gin.Context) {
	type Request struct {
		ProjectID uint     `json:"project_id" binding:"required"`
		DonorName *string  `json:"donor_name"`
		Amount    *float64 `json:"amount" binding:"required"`
	}
	var body Request

	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "project_id and amount are required",
			util.GenerateErrorMessages(err, map[string]string{"ProjectID": "project_id", "Amount": "amount"}), nil)
		return
	}

	id, err := dc.app.Repository.Donation.Create(ctx, nil, &model.Donation{
		ProjectID: body.ProjectID,
		DonorName: body.DonorName,
		Amount:    *body.Amount,
	})
	if err != nil {
		dc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Internal Server Error", nil, nil)
		return
	}

	util.ResponseCreated(ctx, "Donation added", gin.H{"id": id})
}

func (dc DonationController) Update(ctx *gin.Context) {
	type Request struct {
		ID uint `json:"id" binding:"required"`
		repository.DonationUpdateParams
	}
	var body Request

	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Donation ID is required", util.GenerateErrorMessages(err, map[string]string{"ID": "id"}), nil)
		return
	}

	affected, err := dc.app.Repository.Donation.Update(ctx, nil, body.ID, body.DonationUpdateParams)
	if err != nil && !errors.Is(err, repository.ErrNothingToUpdate) {
		dc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Internal Server Error", nil, nil)
		return
	}
	if affected == 0 {
		util.ResponseFailed(ctx, http.StatusNotFound, "Donation not found or nothing to update", nil, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"affectedRows": affected})
}

func (dc DonationController) Delete(ctx *gin.Context) {
	type Request struct {
		ID uint `json:"id" binding:"required"`
	}
	var body Request

	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Donation ID is required", util.GenerateErrorMessages(err, map[string]string{"ID": "id"}), nil)
		return
	}

	affected, err := dc.app.Repository.Donation.Delete(ctx, nil, body.ID)
	if err != nil {
		dc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Internal Server Error", nil, nil)
		return
	}
	if affected == 0 {
		util.ResponseFailed(ctx, http.StatusNotFound, "Donation not found", nil, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"affectedRows": affected})
}

// queryUint parses an optional numeric query parameter; 0 when absent or
// malformed.
func queryUint(ctx *gin.Context, name string) uint {
	raw := ctx.Query(name)
	if raw == "" {
		return 0
	}

	val, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}

	return uint(val)
}
