package route

import (
	"github.com/InnovativeSphere/jewel-dashboard/internal/controller"
	"github.com/InnovativeSphere/jewel-dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

func Partners(r *gin.RouterGroup, pc *controller.PartnerController, middleware *middleware.Middleware) {
	partners := r.Group("/partners")
	partners.Use(middleware.AuthMiddleware)
	{
		partners.GET("", pc.List)
		partners.POST("", pc.Create)
		partners.PUT("", pc.Update)
		partners.DELETE("", pc.Delete)
	}
}
