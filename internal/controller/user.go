package controller

import (
	"errors"
	"net/http"

	"github.com/InnovativeSphere/jewel-dashboard/internal/auth"
	"github.com/InnovativeSphere/jewel-dashboard/internal/model"
	"github.com/InnovativeSphere/jewel-dashboard/internal/repository"
	"github.com/InnovativeSphere/jewel-dashboard/internal/util"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	*baseController
}

func (uc UserController) List(ctx *gin.Context) {
	users, err := uc.app.Repository.User.GetAll(ctx, nil)
	if err != nil {
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Internal Server Error", nil, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"users": users})
}

// HandlePost is dual-purpose: a body with email and password but neither
// first_name nor last_name is a public login; anything else is an
// authenticated user creation. This route is therefore not behind the auth
// middleware and gates the create branch itself.
func (uc UserController) HandlePost(ctx *gin.Context) {
	type Request struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Username  string `json:"username"`
		Password  string `json:"password"`
		Role      string `json:"role"`
	}
	var body Request

	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if body.Email != "" && body.Password != "" && body.FirstName == "" && body.LastName == "" {
		uc.login(ctx, body.Email, body.Password)
		return
	}

	if _, err := uc.authenticate(ctx); err != nil {
		uc.app.Logger.Debugf("Failed to authenticate user create: %v", err)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	required := []struct {
		name  string
		value string
	}{
		{"first_name", body.FirstName},
		{"last_name", body.LastName},
		{"email", body.Email},
		{"username", body.Username},
		{"password", body.Password},
	}
	for _, field := range required {
		if field.value == "" {
			util.ResponseFailed(ctx, http.StatusBadRequest, field.name+" is required", nil, nil)
			return
		}
	}

	id, err := uc.app.Repository.User.Create(ctx, nil, model.User{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
		Username:  body.Username,
		Role:      body.Role,
	}, body.Password)
	if err != nil {
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Internal Server Error", nil, nil)
		return
	}

	util.ResponseCreated(ctx, "User created", gin.H{"id": id})
}

// login failures are 400 with the domain message, deliberately not 401: the
// frontend reserves 401 for expired sessions.
func (uc UserController) login(ctx *gin.Context, email, password string) {
	result, err := uc.app.Repository.User.Login(ctx, nil, email, password)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) || errors.Is(err, repository.ErrInvalidPassword) {
			util.ResponseFailed(ctx, http.StatusBadRequest, err.Error(), util.GenerateErrorMessages(err, "login"), nil)
			return
		}
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Internal Server Error", nil, nil)
		return
	}

	// Also store the token in an http-only cookie; protected requests may
	// carry it there instead of the Authorization header.
	ctx.SetCookie("token", result.Token, int(auth.TOKEN_EXPIRY.Seconds()), "/", "", false, true)

	util.ResponseSuccess(ctx, gin.H{
		"token": result.Token,
		"user":  result.User,
	})
}

func (uc UserController) Update(ctx *gin.Context) {
	type Request struct {
		ID uint `json:"id" binding:"required"`
		repository.UserUpdateParams
	}
	var body Request

	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "User ID is required", util.GenerateErrorMessages(err, map[string]string{"ID": "id"}), nil)
		return
	}

	affected, err := uc.app.Repository.User.Update(ctx, nil, body.ID, body.UserUpdateParams)
	if err != nil && !errors.Is(err, repository.ErrNothingToUpdate) {
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Internal Server Error", nil, nil)
		return
	}
	if affected == 0 {
		util.ResponseFailed(ctx, http.StatusNotFound, "User not found or nothing to update", nil, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"affectedRows": affected})
}

func (uc UserController) Delete(ctx *gin.Context) {
	type Request struct {
		ID uint `json:"id" binding:"required"`
	}
	var body Request

	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "User ID is required", util.GenerateErrorMessages(err, map[string]string{"ID": "id"}), nil)
		return
	}

	affected, err := uc.app.Repository.User.Delete(ctx, nil, body.ID)
	if err != nil {
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Internal Server Error", nil, nil)
		return
	}
	if affected == 0 {
		util.ResponseFailed(ctx, http.StatusNotFound, "User not found", nil, nil)
		return
	}

	if user, err := uc.getAuthUser(ctx); err == nil {
		uc.app.Logger.Infof("User %d deleted by user %d", body.ID, user.ID)
	}

	util.ResponseSuccess(ctx, gin.H{"affectedRows": affected})
}
