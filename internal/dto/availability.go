package dto

// ── 可用时间模块 DTO ──

// SetAvailabilityRequest 新增可用时间窗口请求
// dayOfWeek 取值 0-6（0=周日），startTime/endTime 为 24 小时制 "HH:MM"
// startTime < endTime 由 Service 层校验
type SetAvailabilityRequest struct {
	DayOfWeek *int   `json:"dayOfWeek" binding:"required,min=0,max=6"`
	StartTime string `json:"startTime" binding:"required,hhmm"`
	EndTime   string `json:"endTime"   binding:"required,hhmm"`
}

// AvailabilityResponse 可用时间窗口响应
type AvailabilityResponse struct {
	ID        string `json:"id"`
	ServiceID string `json:"serviceId"`
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}
