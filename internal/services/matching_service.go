package services

import (
	"context"

	"domwork_backend/internal/logger"
	"domwork_backend/internal/models"
	"domwork_backend/internal/repositories"
	"domwork_backend/internal/services/dto"
	"domwork_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// MatchingService - движок матчинга: найм, офферы, принятие, завершение
// работы и пересчет рейтинга. Каждая мутация выполняется в одной транзакции
// с блокировкой строки работника, так что конкурентные переходы по одному
// работнику сериализуются и проигравший получает Conflict.
type MatchingService interface {
	Hire(ctx context.Context, employerID, workerID string) (*dto.OfferResponse, error)
	CreateOffer(ctx context.Context, employerID, workerID string) (*dto.OfferResponse, error)
	ListWorkerOffers(ctx context.Context, workerID string) (*dto.OfferListResponse, error)
	ListEmployerOffers(ctx context.Context, employerID string, status models.OfferStatus) (*dto.OfferListResponse, error)
	AcceptOffer(ctx context.Context, workerID, offerID string) (*dto.OfferResponse, error)
	CompleteJob(ctx context.Context, workerID, offerID string, rating *int) (*dto.OfferResponse, error)
}

type MatchingServiceImpl struct {
	db        repositories.TxManager
	workers   repositories.WorkerRepository
	employers repositories.EmployerRepository
	offers    repositories.OfferRepository
}

func NewMatchingService(
	db repositories.TxManager,
	workers repositories.WorkerRepository,
	employers repositories.EmployerRepository,
	offers repositories.OfferRepository,
) MatchingService {
	return &MatchingServiceImpl{
		db:        db,
		workers:   workers,
		employers: employers,
		offers:    offers,
	}
}

// Hire - прямой найм: создает оффер сразу в статусе accepted, минуя pending
func (s *MatchingServiceImpl) Hire(ctx context.Context, employerID, workerID string) (*dto.OfferResponse, error) {
	var offer *models.JobOffer

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.employers.FindByID(tx, employerID); err != nil {
			return s.translate(err)
		}

		worker, err := s.workers.FindByIDForUpdate(tx, workerID)
		if err != nil {
			return s.translate(err)
		}
		if worker.Hired() {
			return apperrors.ErrWorkerAlreadyHired
		}

		offer = &models.JobOffer{
			EmployerID: employerID,
			WorkerID:   workerID,
			Status:     models.OfferStatusAccepted,
		}
		if err := s.offers.Create(tx, offer); err != nil {
			return apperrors.InternalError(err)
		}

		worker.Employ(employerID)
		if err := s.workers.Update(tx, worker); err != nil {
			return apperrors.InternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "worker hired", "worker_id", workerID, "employer_id", employerID, "offer_id", offer.ID)

	resp := dto.NewOfferResponse(offer)
	return &resp, nil
}

// CreateOffer создает pending-оффер. Состояние работника не меняется:
// работник может копить pending-офферы от разных работодателей.
func (s *MatchingServiceImpl) CreateOffer(ctx context.Context, employerID, workerID string) (*dto.OfferResponse, error) {
	var offer *models.JobOffer

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.employers.FindByID(tx, employerID); err != nil {
			return s.translate(err)
		}
		if _, err := s.workers.FindByID(tx, workerID); err != nil {
			return s.translate(err)
		}

		offer = &models.JobOffer{
			EmployerID: employerID,
			WorkerID:   workerID,
			Status:     models.OfferStatusPending,
		}
		if err := s.offers.Create(tx, offer); err != nil {
			return apperrors.InternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "offer created", "worker_id", workerID, "employer_id", employerID, "offer_id", offer.ID)

	resp := dto.NewOfferResponse(offer)
	return &resp, nil
}

// ListWorkerOffers возвращает все офферы работника (created_at asc)
// вместе с публичным профилем работодателя.
func (s *MatchingServiceImpl) ListWorkerOffers(ctx context.Context, workerID string) (*dto.OfferListResponse, error) {
	var offers []models.JobOffer

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.workers.FindByID(tx, workerID); err != nil {
			return s.translate(err)
		}

		var err error
		offers, err = s.offers.FindByWorker(tx, workerID)
		if err != nil {
			return apperrors.InternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return buildOfferList(offers), nil
}

func (s *MatchingServiceImpl) ListEmployerOffers(ctx context.Context, employerID string, status models.OfferStatus) (*dto.OfferListResponse, error) {
	if status != "" &&
		status != models.OfferStatusPending &&
		status != models.OfferStatusAccepted &&
		status != models.OfferStatusCompleted {
		return nil, apperrors.NewBadRequestError("Unknown offer status: " + string(status))
	}

	var offers []models.JobOffer

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.employers.FindByID(tx, employerID); err != nil {
			return s.translate(err)
		}

		var err error
		offers, err = s.offers.FindByEmployer(tx, employerID, status)
		if err != nil {
			return apperrors.InternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return buildOfferList(offers), nil
}

// AcceptOffer - работник принимает pending-оффер. Чужой оффер неотличим
// от несуществующего (NotFound).
func (s *MatchingServiceImpl) AcceptOffer(ctx context.Context, workerID, offerID string) (*dto.OfferResponse, error) {
	var offer *models.JobOffer

	err := s.db.Transaction(func(tx *gorm.DB) error {
		worker, err := s.workers.FindByIDForUpdate(tx, workerID)
		if err != nil {
			return s.translate(err)
		}

		offer, err = s.offers.FindByID(tx, offerID)
		if err != nil {
			return s.translate(err)
		}
		if offer.WorkerID != workerID {
			return apperrors.ErrNotFound(repositories.ErrOfferNotFound)
		}

		// Принять можно только pending: completed-оффер не "переоткрывается"
		if offer.Status != models.OfferStatusPending {
			return apperrors.ErrOfferNotPending
		}
		if worker.Hired() {
			return apperrors.ErrWorkerAlreadyHired
		}

		offer.Status = models.OfferStatusAccepted
		if err := s.offers.Update(tx, offer); err != nil {
			return apperrors.InternalError(err)
		}

		worker.Employ(offer.EmployerID)
		if err := s.workers.Update(tx, worker); err != nil {
			return apperrors.InternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "offer accepted", "worker_id", workerID, "offer_id", offerID)

	resp := dto.NewOfferResponse(offer)
	return &resp, nil
}

// CompleteJob завершает открытую работу. offerID может быть пустым - тогда
// берется единственный accepted-оффер работника. Рейтинг работника
// пересчитывается как среднее по всей истории завершенных офферов.
func (s *MatchingServiceImpl) CompleteJob(ctx context.Context, workerID, offerID string, rating *int) (*dto.OfferResponse, error) {
	var offer *models.JobOffer

	err := s.db.Transaction(func(tx *gorm.DB) error {
		worker, err := s.workers.FindByIDForUpdate(tx, workerID)
		if err != nil {
			return s.translate(err)
		}

		if offerID != "" {
			offer, err = s.offers.FindByID(tx, offerID)
			if err != nil {
				return s.translate(err)
			}
			if offer.WorkerID != workerID {
				return apperrors.ErrNotFound(repositories.ErrOfferNotFound)
			}
			if offer.Status != models.OfferStatusAccepted {
				return apperrors.ErrNoActiveJob
			}
		} else {
			accepted, err := s.offers.FindByWorkerAndStatus(tx, workerID, models.OfferStatusAccepted)
			if err != nil {
				return apperrors.InternalError(err)
			}
			if len(accepted) == 0 {
				return apperrors.ErrNoActiveJob
			}
			offer = &accepted[0]
		}

		if !worker.Hired() {
			return apperrors.ErrNoActiveJob
		}

		offer.Status = models.OfferStatusCompleted
		offer.Rating = rating
		if err := s.offers.Update(tx, offer); err != nil {
			return apperrors.InternalError(err)
		}

		completed, err := s.offers.FindByWorkerAndStatus(tx, workerID, models.OfferStatusCompleted)
		if err != nil {
			return apperrors.InternalError(err)
		}

		worker.Release()
		worker.Rating = models.MeanRating(completed)
		if err := s.workers.Update(tx, worker); err != nil {
			return apperrors.InternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "job completed", "worker_id", workerID, "offer_id", offer.ID)

	resp := dto.NewOfferResponse(offer)
	return &resp, nil
}

// translate переводит sentinel-ошибки репозиториев в AppError
func (s *MatchingServiceImpl) translate(err error) error {
	switch {
	case apperrors.Is(err, repositories.ErrWorkerNotFound),
		apperrors.Is(err, repositories.ErrEmployerNotFound),
		apperrors.Is(err, repositories.ErrOfferNotFound):
		return apperrors.ErrNotFound(err)
	default:
		return apperrors.InternalError(err)
	}
}

func buildOfferList(offers []models.JobOffer) *dto.OfferListResponse {
	resp := &dto.OfferListResponse{Offers: make([]dto.OfferResponse, 0, len(offers))}
	for i := range offers {
		resp.Offers = append(resp.Offers, dto.NewOfferResponse(&offers[i]))
	}
	return resp
}
