package middleware

import (
	"net/http"

	"github.com/InnovativeSphere/jewel-dashboard/internal/util"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware gates a route on a valid signed token, taken from the
// Authorization header or the "token" cookie. Every failure mode (missing,
// malformed, expired, bad signature) is answered with the same 401.
func (m Middleware) AuthMiddleware(ctx *gin.Context) {
	token, err := util.ReadCredential(ctx)
	if err != nil {
		m.app.Logger.Debugf("Failed to read token: %v", err)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		ctx.Abort()
		return
	}

	claim, err := m.app.JWTService.VerifyToken(token)
	if err != nil {
		m.app.Logger.Debugf("Failed to verify token: %v", err)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		ctx.Abort()
		return
	}

	ctx.Set("user", claim.User)
	ctx.Next()
}
