package model

// Role 用户角色
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
)

// Valid 角色是否合法
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleMember
}

// Roles 全部角色, 固定顺序
func Roles() []Role {
	return []Role{RoleAdmin, RoleMember}
}

// TeamStatus 团队状态
type TeamStatus string

const (
	TeamStatusActive   TeamStatus = "Active"
	TeamStatusInactive TeamStatus = "Inactive"
)

func (s TeamStatus) Valid() bool {
	return s == TeamStatusActive || s == TeamStatusInactive
}

// ProjectStatus 项目状态, 无状态机约束, 任意合法值可直接设置
type ProjectStatus string

const (
	ProjectStatusPending    ProjectStatus = "Pending"
	ProjectStatusPlanning   ProjectStatus = "Planning"
	ProjectStatusInProgress ProjectStatus = "In Progress"
	ProjectStatusInReview   ProjectStatus = "In Review"
	ProjectStatusTesting    ProjectStatus = "Testing"
	ProjectStatusOnHold     ProjectStatus = "On Hold"
	ProjectStatusCompleted  ProjectStatus = "Completed"
	ProjectStatusCancelled  ProjectStatus = "Cancelled"
)

var projectStatuses = []ProjectStatus{
	ProjectStatusPending,
	ProjectStatusPlanning,
	ProjectStatusInProgress,
	ProjectStatusInReview,
	ProjectStatusTesting,
	ProjectStatusOnHold,
	ProjectStatusCompleted,
	ProjectStatusCancelled,
}

func (s ProjectStatus) Valid() bool {
	for _, status := range projectStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// ProjectStatuses 全部项目状态, 固定顺序
func ProjectStatuses() []ProjectStatus {
	statuses := make([]ProjectStatus, len(projectStatuses))
	copy(statuses, projectStatuses)
	return statuses
}
