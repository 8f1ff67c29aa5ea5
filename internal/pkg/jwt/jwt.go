package jwt

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"teamhub/internal/model"
	"teamhub/internal/pkg/config"
	pkgErrors "teamhub/pkg/errors"
)

// UserClaims 会话Token载荷: {id, username, role}
type UserClaims struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Issuer 会话Token签发器, 由配置构造一次, 只读
type Issuer struct {
	secret []byte
	expire time.Duration
}

// NewIssuer 创建签发器
func NewIssuer(cfg *config.JWTConfig) *Issuer {
	return &Issuer{
		secret: []byte(cfg.Secret),
		expire: time.Duration(cfg.Expire) * time.Second,
	}
}

// Expire Token有效期, 同时用于Cookie MaxAge
func (i *Issuer) Expire() time.Duration {
	return i.expire
}

// Sign 为用户签发会话Token
func (i *Issuer) Sign(user *model.User) (string, error) {
	now := time.Now()
	claims := UserClaims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.expire)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Parse 解析Token
func (i *Issuer) Parse(tokenString string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		// 验证签名方法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeUnauthenticated, "Invalid token", err)
	}

	if claims, ok := token.Claims.(*UserClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, pkgErrors.ErrInvalidToken
}

// Validate 验证Token有效性
func (i *Issuer) Validate(tokenString string) (*UserClaims, error) {
	claims, err := i.Parse(tokenString)
	if err != nil {
		return nil, err
	}

	// 检查是否过期
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return nil, pkgErrors.ErrTokenExpired
	}

	return claims, nil
}
