package repository

import (
	"gorm.io/gorm"

	"teamhub/internal/model"
	pkgErrors "teamhub/pkg/errors"
)

type TeamRepository interface {
	Create(team *model.Team) error
	FindByID(id int64, opts ...QueryOption) (*model.Team, error)
	FindByName(name string) (*model.Team, error)
	FindByIDs(ids []int64) ([]*model.Team, error)
	ListAll(opts ...QueryOption) ([]*model.Team, error)
	ListByMember(userID int64, opts ...QueryOption) ([]*model.Team, error)
	Update(team *model.Team) error
	UpdateStatus(id int64, status model.TeamStatus) error
	// ReplaceMembers 整体覆盖成员集合, 未出现在 users 中的既有成员被移除
	ReplaceMembers(team *model.Team, users []*model.User) error
}

type teamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) Create(team *model.Team) error {
	if err := r.db.Create(team).Error; err != nil {
		if err == gorm.ErrDuplicatedKey {
			return pkgErrors.Wrap(pkgErrors.CodeBadUserInput, "Team name already exists", err)
		}
		return pkgErrors.Wrap(pkgErrors.CodeInternalError, "创建团队失败", err)
	}
	return nil
}

func (r *teamRepository) FindByID(id int64, opts ...QueryOption) (*model.Team, error) {
	var team model.Team
	err := applyOptions(r.db, opts).First(&team, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.ErrTeamNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "查询团队失败", err)
	}
	return &team, nil
}

func (r *teamRepository) FindByName(name string) (*model.Team, error) {
	var team model.Team
	err := r.db.Where("name = ?", name).First(&team).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.ErrTeamNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "查询团队失败", err)
	}
	return &team, nil
}

func (r *teamRepository) FindByIDs(ids []int64) ([]*model.Team, error) {
	if len(ids) == 0 {
		return []*model.Team{}, nil
	}
	var teams []*model.Team
	err := r.db.Where("id IN ?", ids).Find(&teams).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "查询团队失败", err)
	}
	return teams, nil
}

func (r *teamRepository) ListAll(opts ...QueryOption) ([]*model.Team, error) {
	var teams []*model.Team
	err := applyOptions(r.db, opts).Order("name ASC").Find(&teams).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "查询团队列表失败", err)
	}
	return teams, nil
}

// ListByMember 查询用户所属的全部团队
func (r *teamRepository) ListByMember(userID int64, opts ...QueryOption) ([]*model.Team, error) {
	var teams []*model.Team
	err := applyOptions(r.db, opts).
		Joins("JOIN team_members ON team_members.team_id = teams.id").
		Where("team_members.user_id = ?", userID).
		Order("teams.name ASC").
		Find(&teams).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "查询团队列表失败", err)
	}
	return teams, nil
}

func (r *teamRepository) Update(team *model.Team) error {
	if err := r.db.Save(team).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeInternalError, "更新团队失败", err)
	}
	return nil
}

func (r *teamRepository) UpdateStatus(id int64, status model.TeamStatus) error {
	if err := r.db.Model(&model.Team{}).Where("id = ?", id).Update("status", status).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeInternalError, "更新团队状态失败", err)
	}
	return nil
}

func (r *teamRepository) ReplaceMembers(team *model.Team, users []*model.User) error {
	if err := r.db.Model(team).Association("Members").Replace(users); err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeInternalError, "更新团队成员失败", err)
	}
	return nil
}
