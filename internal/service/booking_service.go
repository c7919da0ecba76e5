package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Manav2209/s30-assignment-4/internal/dto"
	"github.com/Manav2209/s30-assignment-4/internal/model"
	"github.com/Manav2209/s30-assignment-4/internal/repository"
	"github.com/Manav2209/s30-assignment-4/internal/slot"
	pkgerrors "github.com/Manav2209/s30-assignment-4/pkg/errors"
)

// ── 预约模块业务错误 ──

var (
	ErrSlotAlreadyBooked = errors.New("该时段已被预约")
)

// BookingService 预约业务接口
//
// 设计说明：
//   - 整个预约在一个数据库事务内完成，任一步失败全部回滚
//   - 并发预约同一 slotId 时最多一个成功：先查重，再由 slot_id 唯一约束兜底
//   - 是否为未来时段按 loc 时区解释 slotId 中的日期与时刻
//   - 不校验 slotId 是否落在可用时间网格上
type BookingService interface {
	Book(ctx context.Context, slotID, callerID, role string) (*dto.BookAppointmentResponse, error)
}

type bookingService struct {
	repo   *repository.Repository
	loc    *time.Location
	now    func() time.Time
	logger *zap.Logger
}

// NewBookingService 创建 BookingService 实例
func NewBookingService(repo *repository.Repository, loc *time.Location, logger *zap.Logger) BookingService {
	if loc == nil {
		loc = time.UTC
	}
	return &bookingService{repo: repo, loc: loc, now: time.Now, logger: logger}
}

func (s *bookingService) Book(ctx context.Context, slotID, callerID, role string) (*dto.BookAppointmentResponse, error) {
	// 1. 角色
	if role != model.RoleUser {
		return nil, ErrForbidden
	}

	// 2. 解析 slotId
	id, err := slot.ParseID(slotID)
	if err != nil {
		return nil, err
	}
	if !repository.IsValidID(id.ServiceID) {
		return nil, ErrInvalidSlotID
	}

	var appt *model.Appointment
	err = s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		// 3. 服务
		svc, err := txRepo.Service.GetByID(ctx, id.ServiceID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidSlotID
			}
			return err
		}

		// 4. 提供者不能预约自己的服务
		if svc.ProviderID == callerID {
			return ErrForbidden
		}

		// 5. 只能预约未来时段
		if !id.StartAt(s.loc).After(s.now()) {
			return ErrInvalidSlotTime
		}

		// 6. 查重
		taken, err := txRepo.Appointment.ExistsBySlotID(ctx, slotID)
		if err != nil {
			return err
		}
		if taken {
			return ErrSlotAlreadyBooked
		}

		// 7. 结束时刻，不跨午夜
		endMinute := id.StartMinute() + svc.DurationMinutes
		if endMinute >= slot.MinutesPerDay {
			return ErrInvalidSlotTime
		}

		// 8. 写入
		appt = &model.Appointment{
			SlotID:    slotID,
			ServiceID: svc.ServiceID,
			UserID:    callerID,
			Date:      id.Date,
			StartTime: id.StartTime,
			EndTime:   slot.ToClock(endMinute),
			Status:    model.AppointmentStatusBooked,
		}
		appt.CreatedBy = &callerID
		appt.UpdatedBy = &callerID
		if err := txRepo.Appointment.Create(ctx, appt); err != nil {
			if pkgerrors.IsUniqueViolation(err) {
				return ErrSlotAlreadyBooked
			}
			return err
		}
		return nil
	})
	if err != nil {
		if !isBookingBizErr(err) {
			s.logger.Error("预约失败", zap.String("slot_id", slotID), zap.Error(err))
		}
		return nil, err
	}

	s.logger.Info("预约成功",
		zap.String("appointment_id", appt.AppointmentID),
		zap.String("slot_id", slotID),
		zap.String("user_id", callerID),
	)

	return &dto.BookAppointmentResponse{
		ID:     appt.AppointmentID,
		SlotID: appt.SlotID,
		Status: appt.Status,
	}, nil
}

func isBookingBizErr(err error) bool {
	return errors.Is(err, ErrInvalidSlotID) ||
		errors.Is(err, ErrInvalidSlotTime) ||
		errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrSlotAlreadyBooked)
}
