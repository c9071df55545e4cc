package repositories

import (
	"errors"
	"time"

	"domwork_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrEmployerNotFound      = errors.New("employer not found")
	ErrEmployerAlreadyExists = errors.New("employer already exists")
)

type EmployerRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Employer, error)
	FindByEmail(db *gorm.DB, email string) (*models.Employer, error)
	Create(db *gorm.DB, employer *models.Employer) error
	Update(db *gorm.DB, employer *models.Employer) error
	Delete(db *gorm.DB, id string) error
}

type EmployerRepositoryImpl struct{}

func NewEmployerRepository() EmployerRepository {
	return &EmployerRepositoryImpl{}
}

func (r *EmployerRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Employer, error) {
	var employer models.Employer
	err := db.First(&employer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployerNotFound
		}
		return nil, err
	}
	return &employer, nil
}

func (r *EmployerRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.Employer, error) {
	var employer models.Employer
	err := db.First(&employer, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployerNotFound
		}
		return nil, err
	}
	return &employer, nil
}

func (r *EmployerRepositoryImpl) Create(db *gorm.DB, employer *models.Employer) error {
	var existing models.Employer
	if err := db.Where("email = ?", employer.Email).First(&existing).Error; err == nil {
		return ErrEmployerAlreadyExists
	}

	return db.Create(employer).Error
}

func (r *EmployerRepositoryImpl) Update(db *gorm.DB, employer *models.Employer) error {
	result := db.Model(&models.Employer{}).Where("id = ?", employer.ID).Updates(map[string]interface{}{
		"name":          employer.Name,
		"email":         employer.Email,
		"password_hash": employer.PasswordHash,
		"address":       employer.Address,
		"updated_at":    time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEmployerNotFound
	}
	return nil
}

func (r *EmployerRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Employer{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEmployerNotFound
	}
	return nil
}
