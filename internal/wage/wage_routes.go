package wage

import (
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the wage endpoints. weeklyCost serves
// /wages/weekly-cost and is owned by the cost rollup.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	idempotency gin.HandlerFunc,
	weeklyCost gin.HandlerFunc,
) {
	wages := r.Group("/manager/wages")
	{
		wages.GET("/unprocessed", middleware.RBACAuthorize(rbacService, "wage", "read"), handler.ListUnprocessed)
		wages.POST("/generate", middleware.RBACAuthorize(rbacService, "wage", "generate"), idempotency, handler.Generate)
		wages.GET("/history", middleware.RBACAuthorize(rbacService, "wage", "read"), handler.GetHistory)
		wages.PATCH("/review/:wageId", middleware.RBACAuthorize(rbacService, "wage", "review"), handler.Review)
		wages.GET("/weekly-cost", middleware.RBACAuthorize(rbacService, "cost", "read"), weeklyCost)
	}
}
