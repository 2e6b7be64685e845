package attendance

import (
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	attendance := r.Group("/manager/attendance")
	{
		attendance.POST("", middleware.RBACAuthorize(rbacService, "attendance", "create"), handler.Record)
		attendance.GET("", middleware.RBACAuthorize(rbacService, "attendance", "read"), handler.GetAll)
	}
}
