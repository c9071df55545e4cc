package dto

import (
	"time"

	"domwork_backend/internal/models"
)

// WorkerResponse - публичное представление работника
type WorkerResponse struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Email          string              `json:"email"`
	Phone          string              `json:"phone,omitempty"`
	Address        string              `json:"address,omitempty"`
	ExpectedSalary string              `json:"expected_salary,omitempty"`
	Status         models.WorkerStatus `json:"status"`
	BossID         *string             `json:"boss_id,omitempty"`
	Rating         *float64            `json:"rating,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
}

type WorkerListResponse struct {
	Workers []WorkerResponse `json:"workers"`
	Total   int64            `json:"total"`
}

// UpdateWorkerRequest - частичное обновление, nil-поля не трогаем
type UpdateWorkerRequest struct {
	Name           *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Email          *string `json:"email,omitempty" validate:"omitempty,email"`
	Password       *string `json:"password,omitempty" validate:"omitempty,min=6"`
	Phone          *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Address        *string `json:"address,omitempty" validate:"omitempty,max=200"`
	ExpectedSalary *string `json:"expected_salary,omitempty" validate:"omitempty,max=50"`
}

func NewWorkerResponse(w *models.Worker) WorkerResponse {
	return WorkerResponse{
		ID:             w.ID,
		Name:           w.Name,
		Email:          w.Email,
		Phone:          w.Phone,
		Address:        w.Address,
		ExpectedSalary: w.ExpectedSalary,
		Status:         w.Status,
		BossID:         w.BossID,
		Rating:         w.Rating,
		CreatedAt:      w.CreatedAt,
	}
}
