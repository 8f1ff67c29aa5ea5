package errors

import "fmt"

// 错误码, 与 GraphQL 响应中的 extensions.code 保持一致
const (
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeForbidden       = "FORBIDDEN"
	CodeBadUserInput    = "BAD_USER_INPUT"
	CodeNotFound        = "NOT_FOUND"
	CodeInternalError   = "INTERNAL_SERVER_ERROR"
)

// AppError 应用错误
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Extensions 供 graphql-go 写入响应的 errors[].extensions
func (e *AppError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.Code}
}

// New 创建新错误
func New(code string, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装错误
func Wrap(code string, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// CodeOf 提取错误码, 非 AppError 一律视为内部错误
func CodeOf(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return CodeInternalError
}

// 预定义错误
var (
	ErrUnauthenticated    = New(CodeUnauthenticated, "Not authenticated")
	ErrForbidden          = New(CodeForbidden, "Not authorized")
	ErrAdminRequired      = New(CodeForbidden, "Not authorized. Admin access required.")
	ErrInvalidCredentials = New(CodeUnauthenticated, "Invalid credentials")
	ErrInvalidToken       = New(CodeUnauthenticated, "Invalid token")
	ErrTokenExpired       = New(CodeUnauthenticated, "Token expired")
	ErrRecordNotFound     = New(CodeNotFound, "Record not found")
	ErrUserNotFound       = New(CodeNotFound, "User not found")
	ErrTeamNotFound       = New(CodeNotFound, "Team not found")
	ErrProjectNotFound    = New(CodeNotFound, "Project not found")
)
