package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Manav2209/s30-assignment-4/internal/dto"
	"github.com/Manav2209/s30-assignment-4/internal/service"
	"github.com/Manav2209/s30-assignment-4/pkg/response"
)

// SlotHandler 可预约时段 HTTP 处理器
type SlotHandler struct {
	slotSvc service.SlotService
}

// NewSlotHandler 创建 SlotHandler
func NewSlotHandler(slotSvc service.SlotService) *SlotHandler {
	return &SlotHandler{slotSvc: slotSvc}
}

// ListSlots 某服务某日的空闲时段
// GET /api/v1/services/:serviceId/slots?date=2024-06-03
func (h *SlotHandler) ListSlots(c *gin.Context) {
	var req dto.SlotListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidDate)
		return
	}

	resp, err := h.slotSvc.Generate(c.Request.Context(), c.Param("serviceId"), req.Date)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrServiceNotFound):
			response.NotFound(c, response.CodeServiceNotFound)
		case errors.Is(err, service.ErrInvalidDate):
			response.BadRequest(c, response.CodeInvalidDate)
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, resp)
}
