package services

import (
	"context"

	"domwork_backend/internal/auth"
	"domwork_backend/internal/logger"
	"domwork_backend/internal/models"
	"domwork_backend/internal/repositories"
	"domwork_backend/internal/services/dto"
	"domwork_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type EmployerService interface {
	GetEmployer(ctx context.Context, employerID string) (*dto.EmployerResponse, error)
	UpdateEmployer(ctx context.Context, employerID string, req *dto.UpdateEmployerRequest) (*dto.EmployerResponse, error)
	DeleteEmployer(ctx context.Context, employerID string) error
}

type EmployerServiceImpl struct {
	db        repositories.TxManager
	employers repositories.EmployerRepository
	offers    repositories.OfferRepository
}

func NewEmployerService(
	db repositories.TxManager,
	employers repositories.EmployerRepository,
	offers repositories.OfferRepository,
) EmployerService {
	return &EmployerServiceImpl{
		db:        db,
		employers: employers,
		offers:    offers,
	}
}

func (s *EmployerServiceImpl) GetEmployer(ctx context.Context, employerID string) (*dto.EmployerResponse, error) {
	var resp dto.EmployerResponse

	err := s.db.Transaction(func(tx *gorm.DB) error {
		employer, err := s.employers.FindByID(tx, employerID)
		if err != nil {
			return s.translate(err)
		}
		resp = dto.NewEmployerResponse(employer)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *EmployerServiceImpl) UpdateEmployer(ctx context.Context, employerID string, req *dto.UpdateEmployerRequest) (*dto.EmployerResponse, error) {
	var resp dto.EmployerResponse

	err := s.db.Transaction(func(tx *gorm.DB) error {
		employer, err := s.employers.FindByID(tx, employerID)
		if err != nil {
			return s.translate(err)
		}

		if req.Email != nil && *req.Email != employer.Email {
			existing, err := s.employers.FindByEmail(tx, *req.Email)
			if err == nil && existing.ID != employerID {
				return apperrors.ErrEmailAlreadyExists
			}
			if err != nil && !apperrors.Is(err, repositories.ErrEmployerNotFound) {
				return apperrors.InternalError(err)
			}
			employer.Email = *req.Email
		}

		if req.Password != nil {
			if err := auth.ValidatePassword(*req.Password); err != nil {
				return apperrors.ErrWeakPassword
			}
			hash, err := auth.HashPassword(*req.Password)
			if err != nil {
				return apperrors.InternalError(err)
			}
			employer.PasswordHash = hash
		}

		if req.Name != nil {
			employer.Name = *req.Name
		}
		if req.Address != nil {
			employer.Address = *req.Address
		}

		if err := s.employers.Update(tx, employer); err != nil {
			return s.translate(err)
		}

		resp = dto.NewEmployerResponse(employer)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "employer profile updated", "employer_id", employerID)
	return &resp, nil
}

// DeleteEmployer удаляет аккаунт работодателя. Блокируется, пока у него
// есть открытый (accepted) найм.
func (s *EmployerServiceImpl) DeleteEmployer(ctx context.Context, employerID string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.employers.FindByID(tx, employerID); err != nil {
			return s.translate(err)
		}

		open, err := s.offers.FindByEmployer(tx, employerID, models.OfferStatusAccepted)
		if err != nil {
			return apperrors.InternalError(err)
		}
		if len(open) > 0 {
			return apperrors.ErrAccountHasActiveJob
		}

		if err := s.employers.Delete(tx, employerID); err != nil {
			return s.translate(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.CtxInfo(ctx, "employer account deleted", "employer_id", employerID)
	return nil
}

func (s *EmployerServiceImpl) translate(err error) error {
	if apperrors.Is(err, repositories.ErrEmployerNotFound) {
		return apperrors.ErrNotFound(err)
	}
	return apperrors.InternalError(err)
}
