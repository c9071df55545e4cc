package dto

import "domwork_backend/internal/models"

type RegisterRequest struct {
	Role     models.UserRole `json:"role" validate:"required,oneof=worker employer"`
	Name     string          `json:"name" validate:"required,min=2,max=100"`
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=6"`

	// Поля профиля работника (для роли worker)
	Phone          string `json:"phone,omitempty" validate:"omitempty,max=20"`
	ExpectedSalary string `json:"expected_salary,omitempty" validate:"omitempty,max=50"`

	// Общие поля профиля
	Address string `json:"address,omitempty" validate:"omitempty,max=200"`
}

type LoginRequest struct {
	Role     models.UserRole `json:"role" validate:"required,oneof=worker employer"`
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token  string          `json:"token"`
	UserID string          `json:"user_id"`
	Role   models.UserRole `json:"user_type"`
	Name   string          `json:"name"`
}
