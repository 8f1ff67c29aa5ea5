package model

const TeamTableName = "teams"

// Team 团队模型
// 成员与项目均为引用集合, 赋值操作整体覆盖, 不做级联删除
type Team struct {
	BaseModel
	Name        string     `gorm:"size:100;not null;uniqueIndex" json:"team_name"`
	Description string     `gorm:"type:text" json:"description"`
	Slogan      string     `gorm:"size:255" json:"team_slogan"`
	Status      TeamStatus `gorm:"size:20;not null;default:Active" json:"status"`

	Members  []*User    `gorm:"many2many:team_members" json:"members,omitempty"`
	Projects []*Project `gorm:"many2many:project_teams" json:"projects,omitempty"`
}

func (Team) TableName() string {
	return TeamTableName
}

// HasMember 用户是否在成员集合中
func (t *Team) HasMember(userID int64) bool {
	for _, member := range t.Members {
		if member.ID == userID {
			return true
		}
	}
	return false
}
