package dto

// ── 服务模块 DTO ──

// CreateServiceRequest 创建服务请求
// 时长需为 30 的倍数，由 Service 层补充校验
type CreateServiceRequest struct {
	Name            string `json:"name"            binding:"required,min=1,max=100"`
	Type            string `json:"type"            binding:"required,oneof=MEDICAL HOUSE_HELP BEAUTY FITNESS EDUCATION OTHER"`
	DurationMinutes int    `json:"durationMinutes" binding:"required,min=30,max=120"`
}

// ServiceListRequest 服务列表查询参数
type ServiceListRequest struct {
	Type string `form:"type"`
}

// ServiceResponse 服务信息响应
type ServiceResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Type            string `json:"type"`
	DurationMinutes int    `json:"durationMinutes"`
	ProviderID      string `json:"providerId"`
	CreatedAt       string `json:"createdAt"`
}

// ServiceListItem 服务列表项（含提供者姓名）
type ServiceListItem struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Type            string `json:"type"`
	DurationMinutes int    `json:"durationMinutes"`
	ProviderName    string `json:"providerName"`
}
