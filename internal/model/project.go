package model

import "time"

const ProjectTableName = "projects"

// Project 项目模型
type Project struct {
	BaseModel
	Name        string        `gorm:"size:100;not null;uniqueIndex" json:"project_name"`
	Description string        `gorm:"type:text" json:"description"`
	StartDate   time.Time     `gorm:"not null" json:"start_date"`
	EndDate     *time.Time    `json:"end_date,omitempty"`
	Status      ProjectStatus `gorm:"size:20;not null;default:Pending" json:"status"`

	Teams []*Team `gorm:"many2many:project_teams" json:"teams,omitempty"`
}

func (Project) TableName() string {
	return ProjectTableName
}
