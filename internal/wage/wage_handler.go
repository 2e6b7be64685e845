package wage

import (
	"net/http"

	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/middleware"
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

func writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) ListUnprocessed(c *gin.Context) {
	var req UnprocessedRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.ListUnprocessed(c.Request.Context(), req.ProjectID)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"attendance": resp}, nil)
}

// Generate answers 201 when at least one claim was created and 200 when every
// item failed. Per-item failures are in the body either way.
func (h *Handler) Generate(c *gin.Context) {
	var req GenerateWagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Generate(c.Request.Context(), middleware.ActorFrom(c), req)
	if err != nil {
		writeError(c, err)
		return
	}

	status := http.StatusOK
	if len(resp.Wages) > 0 {
		status = http.StatusCreated
	}
	response.Success(c, status, resp, nil)
}

func (h *Handler) Review(c *gin.Context) {
	var req ReviewWageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Review(c.Request.Context(), middleware.ActorFrom(c), c.Param("wageId"), req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetHistory(c *gin.Context) {
	var filter WageHistoryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.GetHistory(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"wages": resp}, nil)
}
