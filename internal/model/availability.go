package model

import "gorm.io/gorm"

// Availability 服务的每周可用时间窗口 — 对应 availabilities
// 同一 (service_id, day_of_week) 下窗口互不重叠，由数据库排他约束兜底
type Availability struct {
	AvailabilityID string `gorm:"type:uuid;primaryKey"                               json:"availability_id"`
	ServiceID      string `gorm:"type:uuid;not null;index:idx_avail_service_day"     json:"service_id"`
	DayOfWeek      int    `gorm:"type:smallint;not null;index:idx_avail_service_day" json:"day_of_week"` // 0=周日 … 6=周六
	StartTime      string `gorm:"type:varchar(5);not null"                           json:"start_time"`  // "HH:MM"
	EndTime        string `gorm:"type:varchar(5);not null"                           json:"end_time"`    // "HH:MM"
	StartMinute    int    `gorm:"type:smallint;not null"                             json:"-"`
	EndMinute      int    `gorm:"type:smallint;not null"                             json:"-"`
	BaseModel
}

// TableName 指定表名
func (Availability) TableName() string { return "availabilities" }

// BeforeCreate 生成主键
func (a *Availability) BeforeCreate(_ *gorm.DB) error {
	newID(&a.AvailabilityID)
	return nil
}
