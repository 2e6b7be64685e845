package attendance

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

func (h *Handler) Record(c *gin.Context) {
	var req RecordAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Record(c.Request.Context(), middleware.ActorFrom(c), req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"attendance": resp}, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	var req ListAttendanceRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.GetAll(c.Request.Context(), req.ProjectID)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"attendance": resp}, nil)
}
