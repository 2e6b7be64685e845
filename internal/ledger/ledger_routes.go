package ledger

import (
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, idempotency gin.HandlerFunc) {
	ledger := r.Group("/manager/ledger/:projectId")
	{
		ledger.GET("", middleware.RBACAuthorize(rbacService, "ledger", "read"), handler.Query)
		ledger.GET("/export", middleware.RBACAuthorize(rbacService, "ledger", "export"), handler.Export)
		ledger.POST("/adjustments", middleware.RBACAuthorize(rbacService, "ledger", "adjust"), idempotency, handler.CreateAdjustment)
		ledger.POST("/materials", middleware.RBACAuthorize(rbacService, "ledger", "material"), handler.RecordMaterial)
	}
}
