package repositories

import (
	"errors"
	"time"

	"domwork_backend/internal/models"

	"gorm.io/gorm"
)

var ErrOfferNotFound = errors.New("job offer not found")

// OfferRepository - журнал офферов (append-mostly)
type OfferRepository interface {
	Create(db *gorm.DB, offer *models.JobOffer) error
	FindByID(db *gorm.DB, id string) (*models.JobOffer, error)
	FindByWorker(db *gorm.DB, workerID string) ([]models.JobOffer, error)
	FindByWorkerAndStatus(db *gorm.DB, workerID string, status models.OfferStatus) ([]models.JobOffer, error)
	FindByEmployer(db *gorm.DB, employerID string, status models.OfferStatus) ([]models.JobOffer, error)
	Update(db *gorm.DB, offer *models.JobOffer) error
}

type OfferRepositoryImpl struct{}

func NewOfferRepository() OfferRepository {
	return &OfferRepositoryImpl{}
}

func (r *OfferRepositoryImpl) Create(db *gorm.DB, offer *models.JobOffer) error {
	return db.Create(offer).Error
}

func (r *OfferRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.JobOffer, error) {
	var offer models.JobOffer
	err := db.First(&offer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}
	return &offer, nil
}

// FindByWorker возвращает все офферы работника вместе с профилем работодателя,
// в хронологическом порядке.
func (r *OfferRepositoryImpl) FindByWorker(db *gorm.DB, workerID string) ([]models.JobOffer, error) {
	var offers []models.JobOffer
	err := db.Preload("Employer").
		Where("worker_id = ?", workerID).
		Order("created_at ASC").
		Find(&offers).Error
	return offers, err
}

func (r *OfferRepositoryImpl) FindByWorkerAndStatus(db *gorm.DB, workerID string, status models.OfferStatus) ([]models.JobOffer, error) {
	var offers []models.JobOffer
	err := db.Where("worker_id = ? AND status = ?", workerID, status).
		Order("created_at ASC").
		Find(&offers).Error
	return offers, err
}

// FindByEmployer возвращает офферы работодателя, опционально отфильтрованные по статусу
func (r *OfferRepositoryImpl) FindByEmployer(db *gorm.DB, employerID string, status models.OfferStatus) ([]models.JobOffer, error) {
	var offers []models.JobOffer
	query := db.Preload("Worker").Where("employer_id = ?", employerID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("created_at ASC").Find(&offers).Error
	return offers, err
}

func (r *OfferRepositoryImpl) Update(db *gorm.DB, offer *models.JobOffer) error {
	result := db.Model(&models.JobOffer{}).Where("id = ?", offer.ID).Updates(map[string]interface{}{
		"status":     offer.Status,
		"rating":     offer.Rating,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOfferNotFound
	}
	return nil
}
