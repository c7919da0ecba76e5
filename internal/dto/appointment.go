package dto

// ── 预约模块 DTO ──

// BookAppointmentRequest 预约请求
type BookAppointmentRequest struct {
	SlotID string `json:"slotId" binding:"required,min=1"`
}

// BookAppointmentResponse 预约成功响应
type BookAppointmentResponse struct {
	ID     string `json:"id"`
	SlotID string `json:"slotId"`
	Status string `json:"status"`
}

// MyAppointmentResponse 当前用户的预约
type MyAppointmentResponse struct {
	ID        string       `json:"id"`
	SlotID    string       `json:"slotId"`
	Date      string       `json:"date"`
	StartTime string       `json:"startTime"`
	EndTime   string       `json:"endTime"`
	Status    string       `json:"status"`
	Service   ServiceBrief `json:"service"`
}

// ServiceBrief 服务简要信息（嵌入预约响应）
type ServiceBrief struct {
	Name string `json:"name"`
	Type string `json:"type"`
}
