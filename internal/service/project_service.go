package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"

	"teamhub/internal/dto"
	"teamhub/internal/model"
	"teamhub/internal/pkg/auth"
	"teamhub/internal/pkg/config"
	"teamhub/internal/repository"
	"teamhub/pkg/constants"
	pkgErrors "teamhub/pkg/errors"
	"teamhub/pkg/utils"
)

type ProjectService interface {
	Create(req *dto.CreateProjectRequest) (*model.Project, error)
	ListAll() ([]*model.Project, error)
	// ListAssigned 用户所属团队名下的项目; 查看他人需管理员
	ListAssigned(identity *auth.Identity, userID *int64) ([]*model.Project, error)
	// AssignTeams 整体覆盖项目的团队集合
	AssignTeams(req *dto.AssignTeamsRequest) (*model.Project, error)
	UpdateStatus(identity *auth.Identity, req *dto.UpdateProjectStatusRequest) (*model.Project, error)
}

type projectService struct {
	policy   *config.PolicyConfig
	repo     repository.ProjectRepository
	teamRepo repository.TeamRepository
	userRepo repository.UserRepository
}

func NewProjectService(
	policy *config.PolicyConfig,
	repo repository.ProjectRepository,
	teamRepo repository.TeamRepository,
	userRepo repository.UserRepository,
) ProjectService {
	return &projectService{
		policy:   policy,
		repo:     repo,
		teamRepo: teamRepo,
		userRepo: userRepo,
	}
}

func (s *projectService) Create(req *dto.CreateProjectRequest) (*model.Project, error) {
	if err := utils.Validate(req); err != nil {
		return nil, err
	}

	// 检查项目名称是否已存在
	existing, err := s.repo.FindByName(req.Name)
	if err != nil && !errors.Is(err, pkgErrors.ErrProjectNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, pkgErrors.New(pkgErrors.CodeBadUserInput,
			fmt.Sprintf("Project %s already exists", req.Name))
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, pkgErrors.New(pkgErrors.CodeBadUserInput, "Invalid start date")
	}

	var endDate *time.Time
	if req.EndDate != nil && *req.EndDate != "" {
		parsed, err := parseDate(*req.EndDate)
		if err != nil {
			return nil, pkgErrors.New(pkgErrors.CodeBadUserInput, "Invalid end date")
		}
		endDate = &parsed
	}

	teams, err := s.resolveTeams(req.TeamIDs)
	if err != nil {
		return nil, err
	}

	project := &model.Project{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		Status:      model.ProjectStatusPending,
		Teams:       teams,
	}

	if err := s.repo.Create(project); err != nil {
		return nil, err
	}

	return project, nil
}

func (s *projectService) ListAll() ([]*model.Project, error) {
	return s.repo.ListAll(repository.WithPreload("Teams"))
}

func (s *projectService) ListAssigned(identity *auth.Identity, userID *int64) ([]*model.Project, error) {
	targetID := identity.UserID
	if userID != nil && *userID != identity.UserID {
		// 查看他人的项目需要管理员
		if !identity.IsAdmin() {
			return nil, pkgErrors.New(pkgErrors.CodeForbidden, "Not authorized to view another user's projects")
		}
		if _, err := s.userRepo.FindByID(*userID); err != nil {
			return nil, err
		}
		targetID = *userID
	}

	teams, err := s.teamRepo.ListByMember(targetID)
	if err != nil {
		return nil, err
	}

	teamIDs := lo.Map(teams, func(t *model.Team, _ int) int64 { return t.ID })
	return s.repo.ListByTeamIDs(teamIDs, repository.WithPreload("Teams"))
}

// AssignTeams 覆盖语义: 未出现在 team_ids 中的既有团队被移除, 入参去重
func (s *projectService) AssignTeams(req *dto.AssignTeamsRequest) (*model.Project, error) {
	if err := utils.Validate(req); err != nil {
		return nil, err
	}

	project, err := s.repo.FindByID(req.ProjectID)
	if err != nil {
		return nil, err
	}

	teams, err := s.resolveTeams(req.TeamIDs)
	if err != nil {
		return nil, err
	}

	if err := s.repo.ReplaceTeams(project, teams); err != nil {
		return nil, err
	}

	return s.repo.FindByID(project.ID, repository.WithPreload("Teams"))
}

func (s *projectService) UpdateStatus(identity *auth.Identity, req *dto.UpdateProjectStatusRequest) (*model.Project, error) {
	if err := utils.Validate(req); err != nil {
		return nil, err
	}

	status := model.ProjectStatus(req.Status)
	if !status.Valid() {
		return nil, pkgErrors.New(pkgErrors.CodeBadUserInput, "Invalid project status")
	}

	project, err := s.repo.FindByID(req.ProjectID, repository.WithPreload("Teams"))
	if err != nil {
		return nil, err
	}

	// 策略开关: 要求调用者属于项目所分配的某个团队
	if s.policy.ProjectStatusRequiresMembership {
		ok, err := s.callerInProjectTeams(identity.UserID, project)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, pkgErrors.New(pkgErrors.CodeForbidden, "Not authorized to update this project")
		}
	}

	if err := s.repo.UpdateStatus(project.ID, status); err != nil {
		return nil, err
	}

	project.Status = status
	return project, nil
}

func (s *projectService) callerInProjectTeams(userID int64, project *model.Project) (bool, error) {
	memberTeams, err := s.teamRepo.ListByMember(userID)
	if err != nil {
		return false, err
	}
	memberTeamIDs := lo.Map(memberTeams, func(t *model.Team, _ int) int64 { return t.ID })

	return lo.SomeBy(project.Teams, func(t *model.Team) bool {
		return lo.Contains(memberTeamIDs, t.ID)
	}), nil
}

// resolveTeams 按ID解析团队, 去重, 任一ID不存在返回 NOT_FOUND
func (s *projectService) resolveTeams(teamIDs []int64) ([]*model.Team, error) {
	ids := lo.Uniq(teamIDs)
	teams, err := s.teamRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(teams) != len(ids) {
		return nil, pkgErrors.ErrTeamNotFound
	}
	return teams, nil
}

// parseDate 解析日期入参, 支持 2006-01-02 与 RFC3339
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(constants.DateLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
