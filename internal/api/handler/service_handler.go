package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Manav2209/s30-assignment-4/internal/dto"
	"github.com/Manav2209/s30-assignment-4/internal/service"
	"github.com/Manav2209/s30-assignment-4/pkg/response"
)

// ServiceHandler 服务目录 HTTP 处理器
type ServiceHandler struct {
	catalogSvc service.CatalogService
}

// NewServiceHandler 创建 ServiceHandler
func NewServiceHandler(catalogSvc service.CatalogService) *ServiceHandler {
	return &ServiceHandler{catalogSvc: catalogSvc}
}

// CreateService 创建服务
// POST /api/v1/services
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var req dto.CreateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	callerID, role, ok := MustGetCaller(c)
	if !ok {
		return
	}

	svc, err := h.catalogSvc.Create(c.Request.Context(), &req, callerID, role)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	response.Created(c, svc)
}

// ListServices 服务列表
// GET /api/v1/services?type=MEDICAL
func (h *ServiceHandler) ListServices(c *gin.Context) {
	var req dto.ServiceListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidSchema)
		return
	}

	list, err := h.catalogSvc.List(c.Request.Context(), req.Type)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	response.OK(c, list)
}

// GetService 服务详情
// GET /api/v1/services/:serviceId
func (h *ServiceHandler) GetService(c *gin.Context) {
	svc, err := h.catalogSvc.GetByID(c.Request.Context(), c.Param("serviceId"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	response.OK(c, svc)
}

func (h *ServiceHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrForbidden):
		response.Forbidden(c)
	case errors.Is(err, service.ErrInvalidSchema):
		response.BadRequest(c, response.CodeInvalidSchema)
	case errors.Is(err, service.ErrInvalidServiceType):
		response.BadRequest(c, response.CodeInvalidServiceType)
	case errors.Is(err, service.ErrServiceNotFound):
		response.NotFound(c, response.CodeServiceNotFound)
	default:
		response.InternalError(c)
	}
}
