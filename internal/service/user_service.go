package service

import (
	"teamhub/internal/dto"
	"teamhub/internal/model"
	"teamhub/internal/pkg/crypto"
	"teamhub/internal/repository"
	pkgErrors "teamhub/pkg/errors"
	"teamhub/pkg/utils"
)

type UserService interface {
	List() ([]*model.User, error)
	GetByID(id int64) (*model.User, error)
	Create(req *dto.CreateUserRequest) (*model.User, error)
	UpdateRole(req *dto.UpdateUserRoleRequest) (*model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) List() ([]*model.User, error) {
	return s.userRepo.ListAll()
}

func (s *userService) GetByID(id int64) (*model.User, error) {
	return s.userRepo.FindByID(id)
}

// Create 管理员直接创建用户, 角色由请求指定
func (s *userService) Create(req *dto.CreateUserRequest) (*model.User, error) {
	if err := utils.Validate(req); err != nil {
		return nil, err
	}

	if err := checkUserUnique(s.userRepo, req.Username, req.Email); err != nil {
		return nil, err
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "哈希密码失败", err)
	}

	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hash,
		Role:     model.Role(req.Role),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// UpdateRole 设置用户角色, 重复设置同一角色为幂等成功
func (s *userService) UpdateRole(req *dto.UpdateUserRoleRequest) (*model.User, error) {
	if err := utils.Validate(req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(req.UserID)
	if err != nil {
		return nil, err
	}

	role := model.Role(req.Role)
	if !role.Valid() {
		return nil, pkgErrors.New(pkgErrors.CodeBadUserInput, "Invalid role")
	}

	user.Role = role
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}
