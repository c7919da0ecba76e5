package model

import "gorm.io/gorm"

// 预约状态
const (
	AppointmentStatusBooked = "BOOKED"
)

// Appointment 预约表 — 对应 appointments
// slot_id 唯一，是防止重复预约的最终保障
type Appointment struct {
	AppointmentID string `gorm:"type:uuid;primaryKey"                                  json:"appointment_id"`
	SlotID        string `gorm:"type:varchar(64);not null;uniqueIndex"                 json:"slot_id"`
	ServiceID     string `gorm:"type:uuid;not null;index:idx_appt_service_date"        json:"service_id"`
	UserID        string `gorm:"type:uuid;not null;index"                              json:"user_id"`
	Date          string `gorm:"type:varchar(10);not null;index:idx_appt_service_date" json:"date"` // "YYYY-MM-DD"
	StartTime     string `gorm:"type:varchar(5);not null"                              json:"start_time"`
	EndTime       string `gorm:"type:varchar(5);not null"                              json:"end_time"`
	Status        string `gorm:"type:varchar(20);not null;default:'BOOKED'"            json:"status"`
	BaseModel

	// 关联
	Service *Service `gorm:"foreignKey:ServiceID;references:ServiceID"                 json:"service,omitempty"`
	User    *User    `gorm:"foreignKey:UserID;references:UserID"                       json:"user,omitempty"`
}

// TableName 指定表名
func (Appointment) TableName() string { return "appointments" }

// BeforeCreate 生成主键
func (a *Appointment) BeforeCreate(_ *gorm.DB) error {
	newID(&a.AppointmentID)
	return nil
}
