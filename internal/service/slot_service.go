package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Manav2209/s30-assignment-4/internal/dto"
	"github.com/Manav2209/s30-assignment-4/internal/repository"
	"github.com/Manav2209/s30-assignment-4/internal/slot"
)

// SlotService 可预约时段业务接口
type SlotService interface {
	// Generate 生成某服务某日的空闲时段，纯读操作
	Generate(ctx context.Context, serviceID, date string) (*dto.SlotListResponse, error)
}

type slotService struct {
	repo         *repository.Repository
	availability AvailabilityService
	logger       *zap.Logger
}

// NewSlotService 创建 SlotService 实例
// 当日窗口经 availability.WindowsFor 读取，保持写入顺序
func NewSlotService(repo *repository.Repository, availability AvailabilityService, logger *zap.Logger) SlotService {
	return &slotService{repo: repo, availability: availability, logger: logger}
}

func (s *slotService) Generate(ctx context.Context, serviceID, date string) (*dto.SlotListResponse, error) {
	// 1. 查询服务
	svc, err := s.repo.Service.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("查询服务失败", zap.Error(err))
		return nil, err
	}

	// 2. 日期 → 星期
	dayOfWeek, err := slot.Weekday(date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	resp := &dto.SlotListResponse{ServiceID: serviceID, Date: date, Slots: []slot.Slot{}}

	// 3. 当日窗口
	windows, err := s.availability.WindowsFor(ctx, serviceID, dayOfWeek)
	if err != nil {
		return nil, err
	}
	if len(windows) == 0 {
		return resp, nil
	}

	// 4. 当日已有预约
	appts, err := s.repo.Appointment.ListByServiceAndDate(ctx, serviceID, date)
	if err != nil {
		s.logger.Error("查询预约失败", zap.Error(err))
		return nil, err
	}
	booked := make([]slot.Interval, 0, len(appts))
	for _, a := range appts {
		booked = append(booked, slot.Interval{
			Start: slot.ToMinutes(a.StartTime),
			End:   slot.ToMinutes(a.EndTime),
		})
	}

	// 5. 逐窗口切分
	resp.Slots = slot.Generate(serviceID, date, svc.DurationMinutes, windows, booked)
	return resp, nil
}
