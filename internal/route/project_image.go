package route

import (
	"github.com/InnovativeSphere/jewel-dashboard/internal/controller"
	"github.com/InnovativeSphere/jewel-dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

func ProjectImages(r *gin.RouterGroup, ic *controller.ProjectImageController, middleware *middleware.Middleware) {
	images := r.Group("/project_images")
	images.Use(middleware.AuthMiddleware)
	{
		images.GET("", ic.List)
		images.POST("", ic.Create)
		images.PUT("", ic.Update)
		images.DELETE("", ic.Delete)
	}
}
