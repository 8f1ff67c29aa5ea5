package graph

import "context"

// TokenCookie 会话Cookie写入口, 由HTTP处理器注入到每个请求的context
// login/logout 之外的操作不接触Cookie
type TokenCookie interface {
	// Set 写入会话Cookie
	Set(token string)
	// Clear 用已过期的空值覆盖Cookie
	Clear()
}

type cookieContextKey struct{}

var cookieKey cookieContextKey

// WithTokenCookie 将Cookie写入口放入context
func WithTokenCookie(ctx context.Context, cookie TokenCookie) context.Context {
	return context.WithValue(ctx, cookieKey, cookie)
}

// TokenCookieFrom 从context取Cookie写入口
func TokenCookieFrom(ctx context.Context) (TokenCookie, bool) {
	cookie, ok := ctx.Value(cookieKey).(TokenCookie)
	return cookie, ok && cookie != nil
}
