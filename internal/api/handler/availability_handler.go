package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Manav2209/s30-assignment-4/internal/dto"
	"github.com/Manav2209/s30-assignment-4/internal/service"
	"github.com/Manav2209/s30-assignment-4/pkg/response"
)

// AvailabilityHandler 可用时间窗口 HTTP 处理器
type AvailabilityHandler struct {
	availabilitySvc service.AvailabilityService
}

// NewAvailabilityHandler 创建 AvailabilityHandler
func NewAvailabilityHandler(availabilitySvc service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{availabilitySvc: availabilitySvc}
}

// AddWindow 新增可用时间窗口
// POST /api/v1/services/:serviceId/availability
func (h *AvailabilityHandler) AddWindow(c *gin.Context) {
	var req dto.SetAvailabilityRequest
	if !bindJSON(c, &req) {
		return
	}

	callerID, role, ok := MustGetCaller(c)
	if !ok {
		return
	}

	window, err := h.availabilitySvc.AddWindow(c.Request.Context(), c.Param("serviceId"), &req, callerID, role)
	if err != nil {
		h.handleAvailabilityError(c, err)
		return
	}

	response.Created(c, window)
}

// ListWindows 服务的全部可用时间窗口
// GET /api/v1/services/:serviceId/availability
func (h *AvailabilityHandler) ListWindows(c *gin.Context) {
	list, err := h.availabilitySvc.ListWindows(c.Request.Context(), c.Param("serviceId"))
	if err != nil {
		h.handleAvailabilityError(c, err)
		return
	}

	response.OK(c, list)
}

func (h *AvailabilityHandler) handleAvailabilityError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrForbidden):
		response.Forbidden(c)
	case errors.Is(err, service.ErrInvalidSchema):
		response.BadRequest(c, response.CodeInvalidSchema)
	case errors.Is(err, service.ErrServiceNotFound):
		response.NotFound(c, response.CodeServiceNotFound)
	case errors.Is(err, service.ErrOverlappingAvailability):
		response.Conflict(c, response.CodeOverlappingAvailability)
	default:
		response.InternalError(c)
	}
}
