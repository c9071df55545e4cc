package dto

import (
	"time"

	"domwork_backend/internal/models"
)

type CreateOfferRequest struct {
	WorkerID string `json:"worker_id" validate:"required,uuid4"`
}

type CompleteJobRequest struct {
	Rating *int `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
}

// OfferResponse - оффер глазами работника: включает публичный профиль работодателя
type OfferResponse struct {
	ID         string             `json:"id"`
	EmployerID string             `json:"employer_id"`
	WorkerID   string             `json:"worker_id"`
	Status     models.OfferStatus `json:"status"`
	Rating     *int               `json:"rating,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`

	Employer *EmployerResponse `json:"employer,omitempty"`
	Worker   *WorkerResponse   `json:"worker,omitempty"`
}

type OfferListResponse struct {
	Offers []OfferResponse `json:"offers"`
}

func NewOfferResponse(o *models.JobOffer) OfferResponse {
	resp := OfferResponse{
		ID:         o.ID,
		EmployerID: o.EmployerID,
		WorkerID:   o.WorkerID,
		Status:     o.Status,
		Rating:     o.Rating,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
	if o.Employer.ID != "" {
		emp := NewEmployerResponse(&o.Employer)
		resp.Employer = &emp
	}
	if o.Worker.ID != "" {
		w := NewWorkerResponse(&o.Worker)
		resp.Worker = &w
	}
	return resp
}
