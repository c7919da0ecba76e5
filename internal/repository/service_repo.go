package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Manav2209/s30-assignment-4/internal/model"
)

// ServiceRepository 服务数据访问接口
type ServiceRepository interface {
	Create(ctx context.Context, service *model.Service) error
	GetByID(ctx context.Context, id string) (*model.Service, error)
	// GetByIDForUpdate 在事务内对服务行加写锁，用于串行化同一服务的并发写入
	GetByIDForUpdate(ctx context.Context, id string) (*model.Service, error)
	List(ctx context.Context, serviceType string) ([]model.Service, error)
	ListByProvider(ctx context.Context, providerID string) ([]model.Service, error)
}

// IsValidID 主键列均为 uuid 类型，非规范 UUID 文本不会命中任何行
// PostgreSQL 对这类值报 22P02 而非空结果，查询前需先拦截
func IsValidID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

type serviceRepo struct {
	db *gorm.DB
}

// NewServiceRepo 创建 ServiceRepository 实例
func NewServiceRepo(db *gorm.DB) ServiceRepository {
	return &serviceRepo{db: db}
}

func (r *serviceRepo) Create(ctx context.Context, service *model.Service) error {
	return r.db.WithContext(ctx).Create(service).Error
}

func (r *serviceRepo) GetByID(ctx context.Context, id string) (*model.Service, error) {
	if !IsValidID(id) {
		return nil, gorm.ErrRecordNotFound
	}
	var service model.Service
	err := r.db.WithContext(ctx).
		Where("service_id = ?", id).
		First(&service).Error
	if err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepo) GetByIDForUpdate(ctx context.Context, id string) (*model.Service, error) {
	if !IsValidID(id) {
		return nil, gorm.ErrRecordNotFound
	}
	var service model.Service
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("service_id = ?", id).
		First(&service).Error
	if err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepo) List(ctx context.Context, serviceType string) ([]model.Service, error) {
	var services []model.Service
	db := r.db.WithContext(ctx)

	if serviceType != "" {
		db = db.Where("type = ?", serviceType)
	}

	err := db.Preload("Provider").
		Order("created_at ASC").
		Find(&services).Error
	return services, err
}

func (r *serviceRepo) ListByProvider(ctx context.Context, providerID string) ([]model.Service, error) {
	var services []model.Service
	err := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("created_at ASC").
		Find(&services).Error
	return services, err
}
