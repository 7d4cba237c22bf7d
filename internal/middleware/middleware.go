package middleware

import (
	appcontext "github.com/InnovativeSphere/jewel-dashboard/internal/app_context"
	"github.com/InnovativeSphere/jewel-dashboard/internal/ratelimiter"
)

type Middleware struct {
	rateLimiter *ratelimiter.FixedWindowRateLimiter
	app         *appcontext.Application
}

func NewMiddleware(app *appcontext.Application,
	rateLimiter *ratelimiter.FixedWindowRateLimiter,
) *Middleware {
	return &Middleware{app: app, rateLimiter: rateLimiter}
}
