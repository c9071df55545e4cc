package dto

import (
	"time"

	"domwork_backend/internal/models"
)

// EmployerResponse - публичный профиль работодателя
type EmployerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type UpdateEmployerRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"`
	Address  *string `json:"address,omitempty" validate:"omitempty,max=200"`
}

func NewEmployerResponse(e *models.Employer) EmployerResponse {
	return EmployerResponse{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Address:   e.Address,
		CreatedAt: e.CreatedAt,
	}
}
