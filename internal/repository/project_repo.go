package repository

import (
	"gorm.io/gorm"

	"teamhub/internal/model"
	pkgErrors "teamhub/pkg/errors"
)

type ProjectRepository interface {
	Create(project *model.Project) error
	FindByID(id int64, opts ...QueryOption) (*model.Project, error)
	FindByName(name string) (*model.Project, error)
	ListAll(opts ...QueryOption) ([]*model.Project, error)
	ListByTeamIDs(teamIDs []int64, opts ...QueryOption) ([]*model.Project, error)
	Update(project *model.Project) error
	UpdateStatus(id int64, status model.ProjectStatus) error
	// ReplaceTeams 整体覆盖团队集合
	ReplaceTeams(project *model.Project, teams []*model.Team) error
}

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(project *model.Project) error {
	if err := r.db.Create(project).Error; err != nil {
		if err == gorm.ErrDuplicatedKey {
			return pkgErrors.Wrap(pkgErrors.CodeBadUserInput, "Project name already exists", err)
		}
		return pkgErrors.Wrap(pkgErrors.CodeInternalError, "创建项目失败", err)
	}
	return nil
}

func (r *projectRepository) FindByID(id int64, opts ...QueryOption) (*model.Project, error) {
	var project model.Project
	err := applyOptions(r.db, opts).First(&project, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.ErrProjectNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "查询项目失败", err)
	}
	return &project, nil
}

func (r *projectRepository) FindByName(name string) (*model.Project, error) {
	var project model.Project
	err := r.db.Where("name = ?", name).First(&project).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.ErrProjectNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "查询项目失败", err)
	}
	return &project, nil
}

func (r *projectRepository) ListAll(opts ...QueryOption) ([]*model.Project, error) {
	var projects []*model.Project
	err := applyOptions(r.db, opts).Order("name ASC").Find(&projects).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "查询项目列表失败", err)
	}
	return projects, nil
}

// ListByTeamIDs 查询分配给任一指定团队的项目, 去重
func (r *projectRepository) ListByTeamIDs(teamIDs []int64, opts ...QueryOption) ([]*model.Project, error) {
	if len(teamIDs) == 0 {
		return []*model.Project{}, nil
	}
	var projects []*model.Project
	err := applyOptions(r.db, opts).
		Distinct("projects.*").
		Joins("JOIN project_teams ON project_teams.project_id = projects.id").
		Where("project_teams.team_id IN ?", teamIDs).
		Order("projects.name ASC").
		Find(&projects).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "查询项目列表失败", err)
	}
	return projects, nil
}

func (r *projectRepository) Update(project *model.Project) error {
	if err := r.db.Save(project).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeInternalError, "更新项目失败", err)
	}
	return nil
}

func (r *projectRepository) UpdateStatus(id int64, status model.ProjectStatus) error {
	if err := r.db.Model(&model.Project{}).Where("id = ?", id).Update("status", status).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeInternalError, "更新项目状态失败", err)
	}
	return nil
}

func (r *projectRepository) ReplaceTeams(project *model.Project, teams []*model.Team) error {
	if err := r.db.Model(project).Association("Teams").Replace(teams); err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeInternalError, "更新项目团队失败", err)
	}
	return nil
}
