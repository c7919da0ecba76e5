package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/Manav2209/s30-assignment-4/internal/dto"
	"github.com/Manav2209/s30-assignment-4/internal/service"
	"github.com/Manav2209/s30-assignment-4/pkg/response"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeICS  = "text/calendar; charset=utf-8"
)

// ProviderHandler 服务提供者日程 HTTP 处理器
type ProviderHandler struct {
	scheduleSvc service.ScheduleService
	exportSvc   service.ExportService
}

// NewProviderHandler 创建 ProviderHandler
func NewProviderHandler(scheduleSvc service.ScheduleService, exportSvc service.ExportService) *ProviderHandler {
	return &ProviderHandler{scheduleSvc: scheduleSvc, exportSvc: exportSvc}
}

// GetSchedule 提供者某日日程
// GET /api/v1/providers/me/schedule?date=2024-06-03
func (h *ProviderHandler) GetSchedule(c *gin.Context) {
	var req dto.ScheduleRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidDate)
		return
	}

	callerID, role, ok := MustGetCaller(c)
	if !ok {
		return
	}

	sched, err := h.scheduleSvc.ProviderSchedule(c.Request.Context(), req.Date, callerID, role)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, sched)
}

// ExportSchedule 导出提供者某日日程为 Excel
// GET /api/v1/providers/me/schedule/export?date=2024-06-03
func (h *ProviderHandler) ExportSchedule(c *gin.Context) {
	var req dto.ScheduleRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidDate)
		return
	}

	callerID, role, ok := MustGetCaller(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportProviderSchedule(c.Request.Context(), req.Date, callerID, role)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	sendFile(c, filename, contentTypeXLSX, buf.Bytes())
}

func (h *ProviderHandler) handleScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrForbidden):
		response.Forbidden(c)
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, response.CodeInvalidDate)
	default:
		response.InternalError(c)
	}
}

// sendFile 以附件形式下发文件
func sendFile(c *gin.Context, filename, contentType string, data []byte) {
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, contentType, data)
}
