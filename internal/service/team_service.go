package service

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"teamhub/internal/dto"
	"teamhub/internal/model"
	"teamhub/internal/pkg/auth"
	"teamhub/internal/repository"
	pkgErrors "teamhub/pkg/errors"
	"teamhub/pkg/utils"
)

type TeamService interface {
	Create(req *dto.CreateTeamRequest) (*model.Team, error)
	// GetByID 团队详情, 展开成员与项目
	GetByID(teamID int64) (*model.Team, error)
	ListAll() ([]*model.Team, error)
	ListMembers(teamID int64) ([]*model.User, error)
	// ListByMember 用户所属团队, 展开成员与项目
	ListByMember(userID int64) ([]*model.Team, error)
	// AssignUsers 整体覆盖团队成员集合
	AssignUsers(req *dto.AssignUsersRequest) (*model.Team, error)
	// UpdateStatus 更新团队状态, 仅限该团队成员
	UpdateStatus(identity *auth.Identity, req *dto.UpdateTeamStatusRequest) (*model.Team, error)
}

type teamService struct {
	repo     repository.TeamRepository
	userRepo repository.UserRepository
}

func NewTeamService(repo repository.TeamRepository, userRepo repository.UserRepository) TeamService {
	return &teamService{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (s *teamService) Create(req *dto.CreateTeamRequest) (*model.Team, error) {
	if err := utils.Validate(req); err != nil {
		return nil, err
	}

	// 检查团队名称是否已存在
	existing, err := s.repo.FindByName(req.Name)
	if err != nil && !errors.Is(err, pkgErrors.ErrTeamNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, pkgErrors.New(pkgErrors.CodeBadUserInput,
			fmt.Sprintf("Team %s already exists", req.Name))
	}

	team := &model.Team{
		Name:        req.Name,
		Description: req.Description,
		Slogan:      req.Slogan,
		Status:      model.TeamStatusActive,
	}

	if err := s.repo.Create(team); err != nil {
		return nil, err
	}

	return team, nil
}

func (s *teamService) GetByID(teamID int64) (*model.Team, error) {
	return s.repo.FindByID(teamID,
		repository.WithPreload("Members"),
		repository.WithPreload("Projects"),
	)
}

func (s *teamService) ListAll() ([]*model.Team, error) {
	return s.repo.ListAll(
		repository.WithPreload("Members"),
		repository.WithPreload("Projects"),
	)
}

func (s *teamService) ListMembers(teamID int64) ([]*model.User, error) {
	team, err := s.repo.FindByID(teamID, repository.WithPreload("Members"))
	if err != nil {
		return nil, err
	}
	return team.Members, nil
}

func (s *teamService) ListByMember(userID int64) ([]*model.Team, error) {
	return s.repo.ListByMember(userID,
		repository.WithPreload("Members"),
		repository.WithPreload("Projects"),
	)
}

// AssignUsers 覆盖语义: 未出现在 user_ids 中的既有成员被移除, 入参去重
func (s *teamService) AssignUsers(req *dto.AssignUsersRequest) (*model.Team, error) {
	if err := utils.Validate(req); err != nil {
		return nil, err
	}

	team, err := s.repo.FindByID(req.TeamID)
	if err != nil {
		return nil, err
	}

	userIDs := lo.Uniq(req.UserIDs)
	users, err := s.userRepo.FindByIDs(userIDs)
	if err != nil {
		return nil, err
	}
	if len(users) != len(userIDs) {
		return nil, pkgErrors.ErrUserNotFound
	}

	if err := s.repo.ReplaceMembers(team, users); err != nil {
		return nil, err
	}

	return s.GetByID(team.ID)
}

func (s *teamService) UpdateStatus(identity *auth.Identity, req *dto.UpdateTeamStatusRequest) (*model.Team, error) {
	if err := utils.Validate(req); err != nil {
		return nil, err
	}

	status := model.TeamStatus(req.Status)
	if !status.Valid() {
		return nil, pkgErrors.New(pkgErrors.CodeBadUserInput, "Invalid team status")
	}

	team, err := s.repo.FindByID(req.TeamID, repository.WithPreload("Members"))
	if err != nil {
		return nil, err
	}

	// 仅该团队成员可改状态
	if !team.HasMember(identity.UserID) {
		return nil, pkgErrors.New(pkgErrors.CodeForbidden, "Not authorized to update this team")
	}

	if err := s.repo.UpdateStatus(team.ID, status); err != nil {
		return nil, err
	}

	team.Status = status
	return team, nil
}
