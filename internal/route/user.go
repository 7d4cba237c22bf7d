package route

import (
	"github.com/InnovativeSphere/jewel-dashboard/internal/controller"
	"github.com/InnovativeSphere/jewel-dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Users leaves POST outside the auth middleware: the same endpoint serves the
// public login and the authenticated user creation, and the controller
// decides which branch applies.
func Users(r *gin.RouterGroup, uc *controller.UserController, middleware *middleware.Middleware) {
	users := r.Group("/users")
	{
		users.POST("", uc.HandlePost)

		users.GET("", middleware.AuthMiddleware, uc.List)
		users.PUT("", middleware.AuthMiddleware, uc.Update)
		users.DELETE("", middleware.AuthMiddleware, uc.Delete)
	}
}
