package auth

import (
	"context"

	"teamhub/internal/model"
	pkgErrors "teamhub/pkg/errors"
)

// Identity 请求身份, 由会话中间件验证Token后写入请求context
// 匿名请求不写入, 授权决策延迟到各操作的检查点
type Identity struct {
	UserID   int64
	Username string
	Role     model.Role
}

// IsAdmin 是否管理员
func (i *Identity) IsAdmin() bool {
	return i.Role == model.RoleAdmin
}

type contextKey struct{}

var identityKey contextKey

// WithIdentity 将身份写入context
func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFrom 从context取身份
func IdentityFrom(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*Identity)
	return identity, ok && identity != nil
}

// RequireAuthenticated 要求已认证, 否则 UNAUTHENTICATED
func RequireAuthenticated(ctx context.Context) (*Identity, error) {
	identity, ok := IdentityFrom(ctx)
	if !ok {
		return nil, pkgErrors.ErrUnauthenticated
	}
	return identity, nil
}

// RequireAdmin 要求管理员, 未认证 UNAUTHENTICATED, 非管理员 FORBIDDEN
func RequireAdmin(ctx context.Context) (*Identity, error) {
	identity, err := RequireAuthenticated(ctx)
	if err != nil {
		return nil, err
	}
	if !identity.IsAdmin() {
		return nil, pkgErrors.ErrAdminRequired
	}
	return identity, nil
}
