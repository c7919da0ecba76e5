package dto

import "github.com/Manav2209/s30-assignment-4/internal/slot"

// ── 时段模块 DTO ──

// SlotListRequest 时段查询参数
type SlotListRequest struct {
	Date string `form:"date"`
}

// SlotListResponse 某服务某日的可预约时段
type SlotListResponse struct {
	ServiceID string      `json:"serviceId"`
	Date      string      `json:"date"`
	Slots     []slot.Slot `json:"slots"`
}
