package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Manav2209/s30-assignment-4/internal/dto"
	"github.com/Manav2209/s30-assignment-4/internal/service"
	"github.com/Manav2209/s30-assignment-4/pkg/response"
)

// AppointmentHandler 预约 HTTP 处理器
type AppointmentHandler struct {
	bookingSvc     service.BookingService
	appointmentSvc service.AppointmentService
	exportSvc      service.ExportService
}

// NewAppointmentHandler 创建 AppointmentHandler
func NewAppointmentHandler(
	bookingSvc service.BookingService,
	appointmentSvc service.AppointmentService,
	exportSvc service.ExportService,
) *AppointmentHandler {
	return &AppointmentHandler{
		bookingSvc:     bookingSvc,
		appointmentSvc: appointmentSvc,
		exportSvc:      exportSvc,
	}
}

// Book 预约时段
// POST /api/v1/appointments
func (h *AppointmentHandler) Book(c *gin.Context) {
	var req dto.BookAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	callerID, role, ok := MustGetCaller(c)
	if !ok {
		return
	}

	appt, err := h.bookingSvc.Book(c.Request.Context(), req.SlotID, callerID, role)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.Created(c, appt)
}

// ListMine 当前用户的预约
// GET /api/v1/appointments/me
func (h *AppointmentHandler) ListMine(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	list, err := h.appointmentSvc.ListMine(c.Request.Context(), callerID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, list)
}

// ExportCalendar 导出当前用户的预约为 iCalendar
// GET /api/v1/appointments/me/calendar.ics
func (h *AppointmentHandler) ExportCalendar(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportMyCalendar(c.Request.Context(), callerID)
	if err != nil {
		response.InternalError(c)
		return
	}

	sendFile(c, filename, contentTypeICS, buf.Bytes())
}

func (h *AppointmentHandler) handleBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrForbidden):
		response.Forbidden(c)
	case errors.Is(err, service.ErrInvalidSlotID):
		response.BadRequest(c, response.CodeInvalidSlotID)
	case errors.Is(err, service.ErrInvalidSlotTime):
		response.BadRequest(c, response.CodeInvalidSlotTime)
	case errors.Is(err, service.ErrSlotAlreadyBooked):
		response.Conflict(c, response.CodeSlotAlreadyBooked)
	default:
		response.InternalError(c)
	}
}
