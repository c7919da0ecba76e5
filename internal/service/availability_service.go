package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Manav2209/s30-assignment-4/internal/dto"
	"github.com/Manav2209/s30-assignment-4/internal/model"
	"github.com/Manav2209/s30-assignment-4/internal/repository"
	"github.com/Manav2209/s30-assignment-4/internal/slot"
	pkgerrors "github.com/Manav2209/s30-assignment-4/pkg/errors"
)

// ── 可用时间模块业务错误 ──

var (
	ErrOverlappingAvailability = errors.New("可用时间窗口与已有窗口重叠")
)

// AvailabilityService 可用时间窗口业务接口
//
// 设计说明：
//   - 同一服务同一星期的窗口两两不重叠，首尾相接不算重叠
//   - 新增窗口在事务内完成：先锁定服务行，再查重叠、写入
//   - 数据库排他约束作为并发兜底，冲突同样映射为 ErrOverlappingAvailability
type AvailabilityService interface {
	AddWindow(ctx context.Context, serviceID string, req *dto.SetAvailabilityRequest, callerID, role string) (*dto.AvailabilityResponse, error)
	// WindowsFor 按写入顺序返回某服务某星期的窗口
	WindowsFor(ctx context.Context, serviceID string, dayOfWeek int) ([]slot.Window, error)
	ListWindows(ctx context.Context, serviceID string) ([]dto.AvailabilityResponse, error)
}

type availabilityService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAvailabilityService 创建 AvailabilityService 实例
func NewAvailabilityService(repo *repository.Repository, logger *zap.Logger) AvailabilityService {
	return &availabilityService{repo: repo, logger: logger}
}

// ────────────────────── AddWindow ──────────────────────

func (s *availabilityService) AddWindow(ctx context.Context, serviceID string, req *dto.SetAvailabilityRequest, callerID, role string) (*dto.AvailabilityResponse, error) {
	if role != model.RoleServiceProvider {
		return nil, ErrForbidden
	}
	if req.DayOfWeek == nil || *req.DayOfWeek < 0 || *req.DayOfWeek > 6 {
		return nil, ErrInvalidSchema
	}
	if !slot.IsClock(req.StartTime) || !slot.IsClock(req.EndTime) {
		return nil, ErrInvalidSchema
	}
	startMinute := slot.ToMinutes(req.StartTime)
	endMinute := slot.ToMinutes(req.EndTime)
	if startMinute >= endMinute {
		return nil, ErrInvalidSchema
	}
	dayOfWeek := *req.DayOfWeek

	window := &model.Availability{
		ServiceID:   serviceID,
		DayOfWeek:   dayOfWeek,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		StartMinute: startMinute,
		EndMinute:   endMinute,
	}
	window.CreatedBy = &callerID
	window.UpdatedBy = &callerID

	err := s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		svc, err := txRepo.Service.GetByIDForUpdate(ctx, serviceID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrServiceNotFound
			}
			return err
		}
		if svc.ProviderID != callerID {
			return ErrForbidden
		}

		existing, err := txRepo.Availability.FindOverlapping(ctx, serviceID, dayOfWeek, startMinute, endMinute)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrOverlappingAvailability
		}

		if err := txRepo.Availability.Create(ctx, window); err != nil {
			if pkgerrors.IsExclusionViolation(err) {
				return ErrOverlappingAvailability
			}
			return err
		}
		return nil
	})
	if err != nil {
		if !isAvailabilityBizErr(err) {
			s.logger.Error("新增可用时间窗口失败", zap.String("service_id", serviceID), zap.Error(err))
		}
		return nil, err
	}

	return toAvailabilityResponse(window), nil
}

// ────────────────────── WindowsFor ──────────────────────

func (s *availabilityService) WindowsFor(ctx context.Context, serviceID string, dayOfWeek int) ([]slot.Window, error) {
	rows, err := s.repo.Availability.ListByServiceAndDay(ctx, serviceID, dayOfWeek)
	if err != nil {
		s.logger.Error("查询可用时间窗口失败", zap.Error(err))
		return nil, err
	}

	windows := make([]slot.Window, 0, len(rows))
	for _, row := range rows {
		windows = append(windows, slot.Window{Start: row.StartTime, End: row.EndTime})
	}
	return windows, nil
}

// ────────────────────── ListWindows ──────────────────────

func (s *availabilityService) ListWindows(ctx context.Context, serviceID string) ([]dto.AvailabilityResponse, error) {
	if _, err := s.repo.Service.GetByID(ctx, serviceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("查询服务失败", zap.Error(err))
		return nil, err
	}

	rows, err := s.repo.Availability.ListByService(ctx, serviceID)
	if err != nil {
		s.logger.Error("查询可用时间窗口失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.AvailabilityResponse, 0, len(rows))
	for i := range rows {
		result = append(result, *toAvailabilityResponse(&rows[i]))
	}
	return result, nil
}

// ── 辅助函数 ──

func toAvailabilityResponse(a *model.Availability) *dto.AvailabilityResponse {
	return &dto.AvailabilityResponse{
		ID:        a.AvailabilityID,
		ServiceID: a.ServiceID,
		DayOfWeek: a.DayOfWeek,
		StartTime: a.StartTime,
		EndTime:   a.EndTime,
	}
}

func isAvailabilityBizErr(err error) bool {
	return errors.Is(err, ErrServiceNotFound) ||
		errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrOverlappingAvailability)
}
