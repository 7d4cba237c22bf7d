package controller

import (
	"encoding/json"
	"errors"
	"fmt"

	appcontext "github.com/InnovativeSphere/jewel-dashboard/internal/app_context"
	"github.com/InnovativeSphere/jewel-dashboard/internal/auth"
	"github.com/InnovativeSphere/jewel-dashboard/internal/util"
	"github.com/gin-gonic/gin"
)

type baseController struct {
	app *appcontext.Application
}

type Controller struct {
	Index         *IndexController
	Project       *ProjectController
	Donation      *DonationController
	Person        *PersonController
	ProjectImage  *ProjectImageController
	ProjectPerson *ProjectPersonController
	Partner       *PartnerController
	User          *UserController
}

func newBaseController(app *appcontext.Application) *baseController {
	return &baseController{app: app}
}

func NewController(app *appcontext.Application) *Controller {
	bc := newBaseController(app)

	return &Controller{
		Index:         &IndexController{baseController: bc},
		Project:       &ProjectController{baseController: bc},
		Donation:      &DonationController{baseController: bc},
		Person:        &PersonController{baseController: bc},
		ProjectImage:  &ProjectImageController{baseController: bc},
		ProjectPerson: &ProjectPersonController{baseController: bc},
		Partner:       &PartnerController{baseController: bc},
		User:          &UserController{baseController: bc},
	}
}

// getAuthUser reads the identity the auth middleware stored on the context.
func (b *baseController) getAuthUser(ctx *gin.Context) (*auth.JWTPayload, error) {
	user, exists := ctx.Get("user")
	if !exists {
		return nil, errors.New("user not found in context")
	}

	jsonUser, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}

	var authUser *auth.JWTPayload
	err = json.Unmarshal(jsonUser, &authUser)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return authUser, nil
}

// authenticate verifies the request credential directly, for handlers that
// are not behind the auth middleware (the dual-purpose user POST).
func (b *baseController) authenticate(ctx *gin.Context) (*auth.JWTPayload, error) {
	token, err := util.ReadCredential(ctx)
	if err != nil {
		return nil, err
	}

	claims, err := b.app.JWTService.VerifyToken(token)
	if err != nil {
		return nil, err
	}

	return &claims.User, nil
}
