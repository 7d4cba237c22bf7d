package route

import (
	"github.com/InnovativeSphere/jewel-dashboard/internal/controller"
	"github.com/InnovativeSphere/jewel-dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

func Projects(r *gin.RouterGroup, pc *controller.ProjectController, middleware *middleware.Middleware) {
	projects := r.Group("/projects")
	projects.Use(middleware.AuthMiddleware)
	{
		projects.GET("", pc.List)
		projects.POST("", pc.Create)
		projects.PUT("", pc.Update)
		projects.DELETE("", pc.Delete)
	}
}
