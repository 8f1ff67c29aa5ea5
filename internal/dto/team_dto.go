package dto

// CreateTeamRequest 创建团队请求
type CreateTeamRequest struct {
	Name        string `json:"team_name" validate:"required,max=100"`
	Description string `json:"description" validate:"required"`
	Slogan      string `json:"team_slogan" validate:"required,max=255"`
}

// AssignUsersRequest 团队成员赋值请求, 整体覆盖成员集合
type AssignUsersRequest struct {
	TeamID  int64   `json:"team_id" validate:"required"`
	UserIDs []int64 `json:"user_ids"`
}

// UpdateTeamStatusRequest 更新团队状态请求
type UpdateTeamStatusRequest struct {
	TeamID int64  `json:"team_id" validate:"required"`
	Status string `json:"status" validate:"required"`
}
