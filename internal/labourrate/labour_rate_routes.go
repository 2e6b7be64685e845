package labourrate

import (
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	rates := r.Group("/manager/labour-rates")
	{
		rates.POST("", middleware.RBACAuthorize(rbacService, "labour_rate", "create"), handler.Create)
		rates.GET("", middleware.RBACAuthorize(rbacService, "labour_rate", "read"), handler.GetAll)
	}
}
