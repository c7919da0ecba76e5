package dto

// ── 服务提供者日程 DTO ──

// ScheduleRequest 日程查询参数
type ScheduleRequest struct {
	Date string `form:"date"`
}

// ProviderScheduleResponse 提供者某日日程
type ProviderScheduleResponse struct {
	Date     string                `json:"date"`
	Services []ServiceScheduleItem `json:"services"`
}

// ServiceScheduleItem 单个服务当日的预约
type ServiceScheduleItem struct {
	ServiceID    string                     `json:"serviceId"`
	ServiceName  string                     `json:"serviceName"`
	Appointments []ScheduledAppointmentItem `json:"appointments"`
}

// ScheduledAppointmentItem 日程中的一条预约
type ScheduledAppointmentItem struct {
	AppointmentID string `json:"appointmentId"`
	UserName      string `json:"userName"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	Status        string `json:"status"`
}
