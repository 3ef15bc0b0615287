// Package service implements the business logic layer
// Package service 实现业务逻辑层
package service

// ServiceConfig service layer configuration
// ServiceConfig 服务层配置
type ServiceConfig struct {
	User UserServiceConfig // User related config // 用户相关配置
	App  AppServiceConfig  // App related config // 应用相关配置
}

// UserServiceConfig user service configuration
// UserServiceConfig 用户服务配置
type UserServiceConfig struct {
	GuestRetentionTime string // Idle retention before an empty guest identity is purged (e.g., 90d, 24h, 0/empty for no cleanup) // 无备忘录访客身份的闲置保留时间（支持格式：90d、24h、0 或空表示不自动清理）
}

// AppServiceConfig app service configuration
// AppServiceConfig 应用服务配置
type AppServiceConfig struct {
	ListDefaultPageSize int // Default page size for memo listing // 备忘录列表默认分页大小
	ListMaxPageSize     int // Max page size for memo listing // 备忘录列表最大分页大小
}
