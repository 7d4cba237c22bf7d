package route

import (
	"github.com/InnovativeSphere/jewel-dashboard/internal/controller"
	"github.com/InnovativeSphere/jewel-dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

func People(r *gin.RouterGroup, pc *controller.PersonController, middleware *middleware.Middleware) {
	people := r.Group("/people")
	people.Use(middleware.AuthMiddleware)
	{
		people.GET("", pc.List)
		people.POST("", pc.Create)
		people.PUT("", pc.Update)
		people.DELETE("", pc.Delete)
	}
}
