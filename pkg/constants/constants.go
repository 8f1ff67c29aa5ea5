package constants

// 会话Cookie
const (
	TokenCookieName = "token"
)

// 环境类型
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// 日期格式, createProject 的 startDate/endDate 入参
const (
	DateLayout = "2006-01-02"
)
