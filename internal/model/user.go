package model

const UserTableName = "users"

// User 用户模型
type User struct {
	BaseModel
	Username string `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Email    string `gorm:"size:100;not null;uniqueIndex" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"` // bcrypt哈希, 不返回到前端
	Role     Role   `gorm:"size:10;not null;default:MEMBER" json:"role"`

	Teams []*Team `gorm:"many2many:team_members" json:"teams,omitempty"`
}

// TableName 指定表名
func (User) TableName() string {
	return UserTableName
}

// IsAdmin 是否管理员
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
