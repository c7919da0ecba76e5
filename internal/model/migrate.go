package model

// AllModels 全部持久化模型，供测试环境 AutoMigrate 使用
// 生产环境以 pkg/database/migrations 下的 SQL 为准
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&Service{},
		&Availability{},
		&Appointment{},
	}
}
