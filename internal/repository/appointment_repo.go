package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Manav2209/s30-assignment-4/internal/model"
)

// AppointmentRepository 预约数据访问接口
type AppointmentRepository interface {
	Create(ctx context.Context, appt *model.Appointment) error
	ExistsBySlotID(ctx context.Context, slotID string) (bool, error)
	ListByServiceAndDate(ctx context.Context, serviceID, date string) ([]model.Appointment, error)
	// ListByServicesAndDate 返回多个服务某日的预约（预加载用户），按开始时间升序
	ListByServicesAndDate(ctx context.Context, serviceIDs []string, date string) ([]model.Appointment, error)
	// ListByUser 返回用户全部预约（预加载服务），按日期、开始时间升序
	ListByUser(ctx context.Context, userID string) ([]model.Appointment, error)
}

type appointmentRepo struct {
	db *gorm.DB
}

// NewAppointmentRepo 创建 AppointmentRepository 实例
func NewAppointmentRepo(db *gorm.DB) AppointmentRepository {
	return &appointmentRepo{db: db}
}

func (r *appointmentRepo) Create(ctx context.Context, appt *model.Appointment) error {
	return r.db.WithContext(ctx).Create(appt).Error
}

func (r *appointmentRepo) ExistsBySlotID(ctx context.Context, slotID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Appointment{}).
		Where("slot_id = ?", slotID).
		Count(&count).Error
	return count > 0, err
}

func (r *appointmentRepo) ListByServiceAndDate(ctx context.Context, serviceID, date string) ([]model.Appointment, error) {
	var appts []model.Appointment
	err := r.db.WithContext(ctx).
		Where("service_id = ? AND date = ?", serviceID, date).
		Order("start_time ASC").
		Find(&appts).Error
	return appts, err
}

func (r *appointmentRepo) ListByServicesAndDate(ctx context.Context, serviceIDs []string, date string) ([]model.Appointment, error) {
	var appts []model.Appointment
	if len(serviceIDs) == 0 {
		return appts, nil
	}
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("service_id IN ? AND date = ?", serviceIDs, date).
		Order("start_time ASC").
		Find(&appts).Error
	return appts, err
}

func (r *appointmentRepo) ListByUser(ctx context.Context, userID string) ([]model.Appointment, error) {
	var appts []model.Appointment
	err := r.db.WithContext(ctx).
		Preload("Service").
		Where("user_id = ?", userID).
		Order("date ASC, start_time ASC").
		Find(&appts).Error
	return appts, err
}
