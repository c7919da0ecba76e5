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
)

// ── 服务目录模块业务错误 ──

var (
	ErrInvalidServiceType = errors.New("服务类别不合法")
)

// durationStep 服务时长必须是该值的整数倍
const durationStep = 30

// CatalogService 服务目录业务接口
type CatalogService interface {
	Create(ctx context.Context, req *dto.CreateServiceRequest, callerID, role string) (*dto.ServiceResponse, error)
	List(ctx context.Context, serviceType string) ([]dto.ServiceListItem, error)
	GetByID(ctx context.Context, id string) (*dto.ServiceResponse, error)
}

type catalogService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCatalogService 创建 CatalogService 实例
func NewCatalogService(repo *repository.Repository, logger *zap.Logger) CatalogService {
	return &catalogService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *catalogService) Create(ctx context.Context, req *dto.CreateServiceRequest, callerID, role string) (*dto.ServiceResponse, error) {
	if role != model.RoleServiceProvider {
		return nil, ErrForbidden
	}
	if req.Name == "" || !model.ServiceType(req.Type).Valid() {
		return nil, ErrInvalidSchema
	}
	if req.DurationMinutes < 30 || req.DurationMinutes > 120 || req.DurationMinutes%durationStep != 0 {
		return nil, ErrInvalidSchema
	}

	svc := &model.Service{
		Name:            req.Name,
		Type:            model.ServiceType(req.Type),
		DurationMinutes: req.DurationMinutes,
		ProviderID:      callerID,
	}
	svc.CreatedBy = &callerID
	svc.UpdatedBy = &callerID

	if err := s.repo.Service.Create(ctx, svc); err != nil {
		s.logger.Error("创建服务失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("服务已创建",
		zap.String("service_id", svc.ServiceID),
		zap.String("provider_id", callerID),
	)
	return toServiceResponse(svc), nil
}

// ────────────────────── List ──────────────────────

func (s *catalogService) List(ctx context.Context, serviceType string) ([]dto.ServiceListItem, error) {
	if serviceType != "" && !model.ServiceType(serviceType).Valid() {
		return nil, ErrInvalidServiceType
	}

	services, err := s.repo.Service.List(ctx, serviceType)
	if err != nil {
		s.logger.Error("查询服务列表失败", zap.Error(err))
		return nil, err
	}

	items := make([]dto.ServiceListItem, 0, len(services))
	for i := range services {
		svc := &services[i]
		item := dto.ServiceListItem{
			ID:              svc.ServiceID,
			Name:            svc.Name,
			Type:            string(svc.Type),
			DurationMinutes: svc.DurationMinutes,
		}
		if svc.Provider != nil {
			item.ProviderName = svc.Provider.Name
		}
		items = append(items, item)
	}
	return items, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *catalogService) GetByID(ctx context.Context, id string) (*dto.ServiceResponse, error) {
	svc, err := s.repo.Service.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("查询服务失败", zap.Error(err))
		return nil, err
	}
	return toServiceResponse(svc), nil
}

// ── 辅助函数 ──

func toServiceResponse(svc *model.Service) *dto.ServiceResponse {
	return &dto.ServiceResponse{
		ID:              svc.ServiceID,
		Name:            svc.Name,
		Type:            string(svc.Type),
		DurationMinutes: svc.DurationMinutes,
		ProviderID:      svc.ProviderID,
		CreatedAt:       svc.CreatedAt.Format(time.RFC3339),
	}
}
