package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Manav2209/s30-assignment-4/internal/model"
)

// AvailabilityRepository 可用时间窗口数据访问接口
type AvailabilityRepository interface {
	Create(ctx context.Context, window *model.Availability) error
	// ListByServiceAndDay 按写入顺序返回某服务某星期的窗口
	ListByServiceAndDay(ctx context.Context, serviceID string, dayOfWeek int) ([]model.Availability, error)
	ListByService(ctx context.Context, serviceID string) ([]model.Availability, error)
	// FindOverlapping 查找与 [startMinute, endMinute) 相交的窗口，不存在时返回 nil, nil
	FindOverlapping(ctx context.Context, serviceID string, dayOfWeek, startMinute, endMinute int) (*model.Availability, error)
}

type availabilityRepo struct {
	db *gorm.DB
}

// NewAvailabilityRepo 创建 AvailabilityRepository 实例
func NewAvailabilityRepo(db *gorm.DB) AvailabilityRepository {
	return &availabilityRepo{db: db}
}

func (r *availabilityRepo) Create(ctx context.Context, window *model.Availability) error {
	return r.db.WithContext(ctx).Create(window).Error
}

func (r *availabilityRepo) ListByServiceAndDay(ctx context.Context, serviceID string, dayOfWeek int) ([]model.Availability, error) {
	var windows []model.Availability
	err := r.db.WithContext(ctx).
		Where("service_id = ? AND day_of_week = ?", serviceID, dayOfWeek).
		Order("created_at ASC, availability_id ASC").
		Find(&windows).Error
	return windows, err
}

func (r *availabilityRepo) ListByService(ctx context.Context, serviceID string) ([]model.Availability, error) {
	var windows []model.Availability
	err := r.db.WithContext(ctx).
		Where("service_id = ?", serviceID).
		Order("day_of_week ASC, start_minute ASC").
		Find(&windows).Error
	return windows, err
}

func (r *availabilityRepo) FindOverlapping(ctx context.Context, serviceID string, dayOfWeek, startMinute, endMinute int) (*model.Availability, error) {
	var window model.Availability
	err := r.db.WithContext(ctx).
		Where("service_id = ? AND day_of_week = ?", serviceID, dayOfWeek).
		Where("start_minute < ? AND end_minute > ?", endMinute, startMinute).
		First(&window).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &window, nil
}
