package ledger

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/middleware"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/shared/apperror"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

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

func (h *Handler) Query(c *gin.Context) {
	var req LedgerQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Query(c.Request.Context(), c.Param("projectId"), req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, &resp.Pagination)
}

func (h *Handler) Export(c *gin.Context) {
	var req LedgerQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	projectID := c.Param("projectId")
	var buf bytes.Buffer
	if err := h.service.Export(c.Request.Context(), projectID, req, &buf); err != nil {
		writeError(c, err)
		return
	}

	filename := fmt.Sprintf("ledger-%s-%s.xlsx", projectID, time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *Handler) CreateAdjustment(c *gin.Context) {
	var req CreateAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.RecordAdjustment(c.Request.Context(), middleware.ActorFrom(c), c.Param("projectId"), req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) RecordMaterial(c *gin.Context) {
	var req MaterialApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperror.MapValidationError(err))
		return
	}
	if req.ApprovedBy == "" {
		req.ApprovedBy = middleware.ActorFrom(c).UserID
	}

	resp, err := h.service.RecordMaterialApproval(c.Request.Context(), c.Param("projectId"), req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"entry": resp}, nil)
}
