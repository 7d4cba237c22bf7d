package route

import (
	"github.com/InnovativeSphere/jewel-dashboard/internal/controller"
	"github.com/InnovativeSphere/jewel-dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

func ProjectPeople(r *gin.RouterGroup, lc *controller.ProjectPersonController, middleware *middleware.Middleware) {
	links := r.Group("/project_people")
	links.Use(middleware.AuthMiddleware)
	{
		links.GET("", lc.List)
		links.POST("", lc.Create)
		links.PUT("", lc.Update)
		links.DELETE("", lc.Delete)
	}
}
