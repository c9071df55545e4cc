package repositories

import (
	"errors"
	"time"

	"domwork_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrWorkerNotFound      = errors.New("worker not found")
	ErrWorkerAlreadyExists = errors.New("worker already exists")
)

// WorkerRepository - хранилище работников. Методы принимают db-handle явно,
// чтобы один и тот же репозиторий работал и с пулом, и с транзакцией.
type WorkerRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Worker, error)
	FindByIDForUpdate(db *gorm.DB, id string) (*models.Worker, error)
	FindByEmail(db *gorm.DB, email string) (*models.Worker, error)
	FindAll(db *gorm.DB, limit, offset int) ([]models.Worker, error)
	FindByStatus(db *gorm.DB, status models.WorkerStatus, limit, offset int) ([]models.Worker, error)
	Create(db *gorm.DB, worker *models.Worker) error
	Update(db *gorm.DB, worker *models.Worker) error
	Delete(db *gorm.DB, id string) error
	CountAll(db *gorm.DB) (int64, error)
}

type WorkerRepositoryImpl struct{}

func NewWorkerRepository() WorkerRepository {
	return &WorkerRepositoryImpl{}
}

func (r *WorkerRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Worker, error) {
	var worker models.Worker
	err := db.First(&worker, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, err
	}
	return &worker, nil
}

// FindByIDForUpdate читает строку работника под блокировкой SELECT ... FOR UPDATE.
// Используется движком матчинга: конкурентные Hire/Accept/Complete по одному
// работнику сериализуются на этой строке.
func (r *WorkerRepositoryImpl) FindByIDForUpdate(db *gorm.DB, id string) (*models.Worker, error) {
	var worker models.Worker
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&worker, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, err
	}
	return &worker, nil
}

func (r *WorkerRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.Worker, error) {
	var worker models.Worker
	err := db.First(&worker, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, err
	}
	return &worker, nil
}

func (r *WorkerRepositoryImpl) FindAll(db *gorm.DB, limit, offset int) ([]models.Worker, error) {
	var workers []models.Worker
	err := db.Order("created_at ASC").Limit(limit).Offset(offset).Find(&workers).Error
	return workers, err
}

func (r *WorkerRepositoryImpl) FindByStatus(db *gorm.DB, status models.WorkerStatus, limit, offset int) ([]models.Worker, error) {
	var workers []models.Worker
	err := db.Where("status = ?", status).
		Order("created_at ASC").Limit(limit).Offset(offset).Find(&workers).Error
	return workers, err
}

func (r *WorkerRepositoryImpl) Create(db *gorm.DB, worker *models.Worker) error {
	// Email уникален в рамках роли
	var existing models.Worker
	if err := db.Where("email = ?", worker.Email).First(&existing).Error; err == nil {
		return ErrWorkerAlreadyExists
	}

	return db.Create(worker).Error
}

func (r *WorkerRepositoryImpl) Update(db *gorm.DB, worker *models.Worker) error {
	// Updates через map, чтобы записывались и NULL-значения (boss_id, rating)
	result := db.Model(&models.Worker{}).Where("id = ?", worker.ID).Updates(map[string]interface{}{
		"name":            worker.Name,
		"email":           worker.Email,
		"password_hash":   worker.PasswordHash,
		"phone":           worker.Phone,
		"address":         worker.Address,
		"expected_salary": worker.ExpectedSalary,
		"status":          worker.Status,
		"boss_id":         worker.BossID,
		"rating":          worker.Rating,
		"updated_at":      time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrWorkerNotFound
	}
	return nil
}

func (r *WorkerRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Worker{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrWorkerNotFound
	}
	return nil
}

func (r *WorkerRepositoryImpl) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Worker{}).Count(&count).Error
	return count, err
}
