package services

import (
	"context"

	"domwork_backend/internal/auth"
	"domwork_backend/internal/logger"
	"domwork_backend/internal/repositories"
	"domwork_backend/internal/services/dto"
	"domwork_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type WorkerService interface {
	GetWorker(ctx context.Context, workerID string) (*dto.WorkerResponse, error)
	ListWorkers(ctx context.Context, page, pageSize int) (*dto.WorkerListResponse, error)
	UpdateWorker(ctx context.Context, workerID string, req *dto.UpdateWorkerRequest) (*dto.WorkerResponse, error)
	DeleteWorker(ctx context.Context, workerID string) error
}

type WorkerServiceImpl struct {
	db      repositories.TxManager
	workers repositories.WorkerRepository
	offers  repositories.OfferRepository
}

func NewWorkerService(
	db repositories.TxManager,
	workers repositories.WorkerRepository,
	offers repositories.OfferRepository,
) WorkerService {
	return &WorkerServiceImpl{
		db:      db,
		workers: workers,
		offers:  offers,
	}
}

func (s *WorkerServiceImpl) GetWorker(ctx context.Context, workerID string) (*dto.WorkerResponse, error) {
	var resp dto.WorkerResponse

	err := s.db.Transaction(func(tx *gorm.DB) error {
		worker, err := s.workers.FindByID(tx, workerID)
		if err != nil {
			return s.translate(err)
		}
		resp = dto.NewWorkerResponse(worker)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListWorkers - витрина работников для работодателя
func (s *WorkerServiceImpl) ListWorkers(ctx context.Context, page, pageSize int) (*dto.WorkerListResponse, error) {
	resp := &dto.WorkerListResponse{Workers: []dto.WorkerResponse{}}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		workers, err := s.workers.FindAll(tx, pageSize, (page-1)*pageSize)
		if err != nil {
			return apperrors.InternalError(err)
		}
		total, err := s.workers.CountAll(tx)
		if err != nil {
			return apperrors.InternalError(err)
		}

		for i := range workers {
			resp.Workers = append(resp.Workers, dto.NewWorkerResponse(&workers[i]))
		}
		resp.Total = total
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// UpdateWorker - частичное обновление профиля. Смена email перепроверяет
// уникальность в рамках роли, смена пароля перехеширует его.
// Строка читается под той же блокировкой, что и в движке матчинга:
// запись в Update уносит все колонки, и чтение без блокировки могло бы
// откатить параллельно закоммиченный найм (status/boss_id/rating).
func (s *WorkerServiceImpl) UpdateWorker(ctx context.Context, workerID string, req *dto.UpdateWorkerRequest) (*dto.WorkerResponse, error) {
	var resp dto.WorkerResponse

	err := s.db.Transaction(func(tx *gorm.DB) error {
		worker, err := s.workers.FindByIDForUpdate(tx, workerID)
		if err != nil {
			return s.translate(err)
		}

		if req.Email != nil && *req.Email != worker.Email {
			existing, err := s.workers.FindByEmail(tx, *req.Email)
			if err == nil && existing.ID != workerID {
				return apperrors.ErrEmailAlreadyExists
			}
			if err != nil && !apperrors.Is(err, repositories.ErrWorkerNotFound) {
				return apperrors.InternalError(err)
			}
			worker.Email = *req.Email
		}

		if req.Password != nil {
			if err := auth.ValidatePassword(*req.Password); err != nil {
				return apperrors.ErrWeakPassword
			}
			hash, err := auth.HashPassword(*req.Password)
			if err != nil {
				return apperrors.InternalError(err)
			}
			worker.PasswordHash = hash
		}

		if req.Name != nil {
			worker.Name = *req.Name
		}
		if req.Phone != nil {
			worker.Phone = *req.Phone
		}
		if req.Address != nil {
			worker.Address = *req.Address
		}
		if req.ExpectedSalary != nil {
			worker.ExpectedSalary = *req.ExpectedSalary
		}

		if err := s.workers.Update(tx, worker); err != nil {
			return s.translate(err)
		}

		resp = dto.NewWorkerResponse(worker)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "worker profile updated", "worker_id", workerID)
	return &resp, nil
}

// DeleteWorker удаляет аккаунт. Удаление блокируется, пока у работника
// есть открытая (accepted) работа; история офферов остается в журнале.
func (s *WorkerServiceImpl) DeleteWorker(ctx context.Context, workerID string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		worker, err := s.workers.FindByIDForUpdate(tx, workerID)
		if err != nil {
			return s.translate(err)
		}
		if worker.Hired() {
			return apperrors.ErrAccountHasActiveJob
		}

		if err := s.workers.Delete(tx, workerID); err != nil {
			return s.translate(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.CtxInfo(ctx, "worker account deleted", "worker_id", workerID)
	return nil
}

func (s *WorkerServiceImpl) translate(err error) error {
	if apperrors.Is(err, repositories.ErrWorkerNotFound) {
		return apperrors.ErrNotFound(err)
	}
	return apperrors.InternalError(err)
}
