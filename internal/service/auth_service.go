package service

import (
	"errors"

	"teamhub/internal/dto"
	"teamhub/internal/model"
	"teamhub/internal/pkg/config"
	"teamhub/internal/pkg/crypto"
	"teamhub/internal/pkg/jwt"
	"teamhub/internal/repository"
	pkgErrors "teamhub/pkg/errors"
	"teamhub/pkg/utils"
)

type AuthService interface {
	Login(req *dto.LoginRequest) (*dto.AuthPayload, error)
	Register(req *dto.RegisterRequest) (*model.User, error)
}

type authService struct {
	cfg      *config.AuthConfig
	issuer   *jwt.Issuer
	userRepo repository.UserRepository
}

func NewAuthService(cfg *config.AuthConfig, issuer *jwt.Issuer, userRepo repository.UserRepository) AuthService {
	return &authService{
		cfg:      cfg,
		issuer:   issuer,
		userRepo: userRepo,
	}
}

// Login 校验凭证并签发会话Token
// 用户不存在与密码错误返回同一个错误, 不泄露用户名是否注册
func (s *authService) Login(req *dto.LoginRequest) (*dto.AuthPayload, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		if errors.Is(err, pkgErrors.ErrUserNotFound) {
			return nil, pkgErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(req.Password, user.Password) {
		return nil, pkgErrors.ErrInvalidCredentials
	}

	token, err := s.issuer.Sign(user)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "签发Token失败", err)
	}

	return &dto.AuthPayload{
		Token: token,
		User:  user,
	}, nil
}

// Register 公开注册
// 默认角色 MEMBER, 注册码匹配管理员注册码时授予 ADMIN
func (s *authService) Register(req *dto.RegisterRequest) (*model.User, error) {
	if err := utils.Validate(req); err != nil {
		return nil, err
	}

	if err := checkUserUnique(s.userRepo, req.Username, req.Email); err != nil {
		return nil, err
	}

	role := model.RoleMember
	if req.RegistrationCode != "" && s.cfg.AdminRegistrationCode != "" &&
		req.RegistrationCode == s.cfg.AdminRegistrationCode {
		role = model.RoleAdmin
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "哈希密码失败", err)
	}

	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hash,
		Role:     role,
	}

	// 并发注册撞上唯一索引时由repository翻译为 BAD_USER_INPUT
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// checkUserUnique 用户名与邮箱查重, 提示具体冲突字段
func checkUserUnique(repo repository.UserRepository, username, email string) error {
	existing, err := repo.FindByUsernameOrEmail(username, email)
	if err != nil {
		if errors.Is(err, pkgErrors.ErrUserNotFound) {
			return nil
		}
		return err
	}

	if existing.Username == username {
		return pkgErrors.New(pkgErrors.CodeBadUserInput, "Username already exists")
	}
	return pkgErrors.New(pkgErrors.CodeBadUserInput, "Email already exists")
}
