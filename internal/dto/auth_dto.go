package dto

import "teamhub/internal/model"

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest 注册请求, registrationCode 匹配管理员注册码时授予 ADMIN
type RegisterRequest struct {
	Username         string `json:"username" validate:"required,max=50"`
	Email            string `json:"email" validate:"required,email,max=100"`
	Password         string `json:"password" validate:"required,min=6,max=72"`
	RegistrationCode string `json:"registration_code"`
}

// AuthPayload 登录响应
type AuthPayload struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}
