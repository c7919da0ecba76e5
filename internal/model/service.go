package model

import "gorm.io/gorm"

// ServiceType 服务类别
type ServiceType string

const (
	ServiceTypeMedical   ServiceType = "MEDICAL"
	ServiceTypeHouseHelp ServiceType = "HOUSE_HELP"
	ServiceTypeBeauty    ServiceType = "BEAUTY"
	ServiceTypeFitness   ServiceType = "FITNESS"
	ServiceTypeEducation ServiceType = "EDUCATION"
	ServiceTypeOther     ServiceType = "OTHER"
)

// ServiceTypes 全部合法类别
var ServiceTypes = []ServiceType{
	ServiceTypeMedical,
	ServiceTypeHouseHelp,
	ServiceTypeBeauty,
	ServiceTypeFitness,
	ServiceTypeEducation,
	ServiceTypeOther,
}

// Valid 是否为合法类别
func (t ServiceType) Valid() bool {
	for _, v := range ServiceTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Service 可预约服务表 — 对应 services
// 创建后不可修改
type Service struct {
	ServiceID       string      `gorm:"type:uuid;primaryKey"            json:"service_id"`
	Name            string      `gorm:"type:varchar(100);not null"      json:"name"`
	Type            ServiceType `gorm:"type:varchar(20);not null;index" json:"type"`
	DurationMinutes int         `gorm:"type:smallint;not null"          json:"duration_minutes"` // 30/60/90/120
	ProviderID      string      `gorm:"type:uuid;not null;index"        json:"provider_id"`
	BaseModel

	// 关联
	Provider *User `gorm:"foreignKey:ProviderID;references:UserID"      json:"provider,omitempty"`
}

// TableName 指定表名
func (Service) TableName() string { return "services" }

// BeforeCreate 生成主键
func (s *Service) BeforeCreate(_ *gorm.DB) error {
	newID(&s.ServiceID)
	return nil
}
