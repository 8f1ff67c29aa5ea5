package repository

import (
	"gorm.io/gorm"

	"teamhub/internal/model"
	pkgErrors "teamhub/pkg/errors"
)

type UserRepository interface {
	Create(user *model.User) error
	FindByID(id int64) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	FindByUsernameOrEmail(username, email string) (*model.User, error)
	FindByIDs(ids []int64) ([]*model.User, error)
	ListAll() ([]*model.User, error)
	Update(user *model.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if err == gorm.ErrDuplicatedKey {
			return pkgErrors.Wrap(pkgErrors.CodeBadUserInput, "Username or email already exists", err)
		}
		return pkgErrors.Wrap(pkgErrors.CodeInternalError, "创建用户失败", err)
	}
	return nil
}

func (r *userRepository) FindByID(id int64) (*model.User, error) {
	var user model.User
	err := r.db.First(&user, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.ErrUserNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "查询用户失败", err)
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.ErrUserNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "查询用户失败", err)
	}
	return &user, nil
}

// FindByUsernameOrEmail 注册查重用, 命中任意一项即返回
func (r *userRepository) FindByUsernameOrEmail(username, email string) (*model.User, error) {
	var user model.User
	err := r.db.Where("username = ? OR email = ?", username, email).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.ErrUserNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "查询用户失败", err)
	}
	return &user, nil
}

func (r *userRepository) FindByIDs(ids []int64) ([]*model.User, error) {
	if len(ids) == 0 {
		return []*model.User{}, nil
	}
	var users []*model.User
	err := r.db.Where("id IN ?", ids).Find(&users).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "查询用户失败", err)
	}
	return users, nil
}

func (r *userRepository) ListAll() ([]*model.User, error) {
	var users []*model.User
	err := r.db.Order("username ASC").Find(&users).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "查询用户列表失败", err)
	}
	return users, nil
}

func (r *userRepository) Update(user *model.User) error {
	if err := r.db.Save(user).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeInternalError, "更新用户失败", err)
	}
	return nil
}
