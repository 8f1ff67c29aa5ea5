package dto

// CreateProjectRequest 创建项目请求
// StartDate/EndDate 为 2006-01-02 或 RFC3339 字符串, 解析失败返回 BAD_USER_INPUT
type CreateProjectRequest struct {
	Name        string  `json:"project_name" validate:"required,max=100"`
	Description string  `json:"description" validate:"required"`
	TeamIDs     []int64 `json:"team_ids"`
	StartDate   string  `json:"start_date" validate:"required"`
	EndDate     *string `json:"end_date"`
}

// AssignTeamsRequest 项目团队赋值请求, 整体覆盖团队集合
type AssignTeamsRequest struct {
	ProjectID int64   `json:"project_id" validate:"required"`
	TeamIDs   []int64 `json:"team_ids"`
}

// UpdateProjectStatusRequest 更新项目状态请求
type UpdateProjectStatusRequest struct {
	ProjectID int64  `json:"project_id" validate:"required"`
	Status    string `json:"status" validate:"required"`
}
