package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Manav2209/s30-assignment-4/internal/dto"
	"github.com/Manav2209/s30-assignment-4/internal/repository"
)

// AppointmentService 当前用户预约查询接口
type AppointmentService interface {
	// ListMine 返回调用者的全部预约，按日期、开始时间升序
	ListMine(ctx context.Context, callerID string) ([]dto.MyAppointmentResponse, error)
}

type appointmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAppointmentService 创建 AppointmentService 实例
func NewAppointmentService(repo *repository.Repository, logger *zap.Logger) AppointmentService {
	return &appointmentService{repo: repo, logger: logger}
}

func (s *appointmentService) ListMine(ctx context.Context, callerID string) ([]dto.MyAppointmentResponse, error) {
	appts, err := s.repo.Appointment.ListByUser(ctx, callerID)
	if err != nil {
		s.logger.Error("查询用户预约失败", zap.String("user_id", callerID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.MyAppointmentResponse, 0, len(appts))
	for _, a := range appts {
		item := dto.MyAppointmentResponse{
			ID:        a.AppointmentID,
			SlotID:    a.SlotID,
			Date:      a.Date,
			StartTime: a.StartTime,
			EndTime:   a.EndTime,
			Status:    a.Status,
		}
		if a.Service != nil {
			item.Service = dto.ServiceBrief{Name: a.Service.Name, Type: string(a.Service.Type)}
		}
		result = append(result, item)
	}
	return result, nil
}
