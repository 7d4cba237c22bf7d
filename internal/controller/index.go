package controller

import (
	"github.com/InnovativeSphere/jewel-dashboard/internal/util"
	"github.com/gin-gonic/gin"
)

type IndexController struct {
	*baseController
}

func (ic IndexController) Index(ctx *gin.Context) {
	util.ResponseSuccess(ctx, gin.H{
		"message": "Jewel dashboard API",
	})
}
