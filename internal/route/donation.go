package route

import (
	"github.com/InnovativeSphere/jewel-dashboard/internal/controller"
	"github.com/InnovativeSphere/jewel-dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

func Donations(r *gin.RouterGroup, dc *controller.DonationController, middleware *middleware.Middleware) {
	donations := r.Group("/donations")
	donations.Use(middleware.AuthMiddleware)
	{
		donations.GET("", dc.List)
		donations.POST("", dc.Create)
		donations.PUT("", dc.Update)
		donations.DELETE("", dc.Delete)
	}
}
