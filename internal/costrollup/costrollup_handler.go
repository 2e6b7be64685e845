package costrollup

import (
	"net/http"

	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/shared/apperror"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) WeeklyCost(c *gin.Context) {
	var req WeeklyCostRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	resp, err := h.service.WeeklyCost(c.Request.Context(), req.ProjectID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"weekly_costs": resp}, nil)
}
