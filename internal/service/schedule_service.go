package service

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/Manav2209/s30-assignment-4/internal/dto"
	"github.com/Manav2209/s30-assignment-4/internal/model"
	"github.com/Manav2209/s30-assignment-4/internal/repository"
	"github.com/Manav2209/s30-assignment-4/internal/slot"
)

// ScheduleService 服务提供者日程接口
type ScheduleService interface {
	// ProviderSchedule 返回调用者名下每个服务在 date 当天的预约
	// 没有预约的服务也会出现，appointments 为空数组
	ProviderSchedule(ctx context.Context, date, callerID, role string) (*dto.ProviderScheduleResponse, error)
}

type scheduleService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewScheduleService 创建 ScheduleService 实例
func NewScheduleService(repo *repository.Repository, logger *zap.Logger) ScheduleService {
	return &scheduleService{repo: repo, logger: logger}
}

func (s *scheduleService) ProviderSchedule(ctx context.Context, date, callerID, role string) (*dto.ProviderScheduleResponse, error) {
	if role != model.RoleServiceProvider {
		return nil, ErrForbidden
	}
	if _, err := slot.ParseDate(date); err != nil {
		return nil, ErrInvalidDate
	}

	services, err := s.repo.Service.ListByProvider(ctx, callerID)
	if err != nil {
		s.logger.Error("查询提供者服务失败", zap.String("provider_id", callerID), zap.Error(err))
		return nil, err
	}

	resp := &dto.ProviderScheduleResponse{
		Date:     date,
		Services: make([]dto.ServiceScheduleItem, 0, len(services)),
	}
	if len(services) == 0 {
		return resp, nil
	}

	serviceIDs := make([]string, 0, len(services))
	for _, svc := range services {
		serviceIDs = append(serviceIDs, svc.ServiceID)
	}

	appts, err := s.repo.Appointment.ListByServicesAndDate(ctx, serviceIDs, date)
	if err != nil {
		s.logger.Error("查询提供者日程失败", zap.String("provider_id", callerID), zap.Error(err))
		return nil, err
	}

	byService := make(map[string][]dto.ScheduledAppointmentItem, len(services))
	for _, a := range appts {
		userName := ""
		if a.User != nil {
			userName = a.User.Name
		}
		byService[a.ServiceID] = append(byService[a.ServiceID], dto.ScheduledAppointmentItem{
			AppointmentID: a.AppointmentID,
			UserName:      userName,
			StartTime:     a.StartTime,
			EndTime:       a.EndTime,
			Status:        a.Status,
		})
	}

	for _, svc := range services {
		items := byService[svc.ServiceID]
		if items == nil {
			items = []dto.ScheduledAppointmentItem{}
		}
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].StartTime < items[j].StartTime
		})
		resp.Services = append(resp.Services, dto.ServiceScheduleItem{
			ServiceID:    svc.ServiceID,
			ServiceName:  svc.Name,
			Appointments: items,
		})
	}
	return resp, nil
}
