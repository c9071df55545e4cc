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

// AuthService - регистрация и вход для обеих ролей.
// Единый контракт: bcrypt-хеш пароля, HS256-токен с user_id и ролью.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type AuthServiceImpl struct {
	db        repositories.TxManager
	workers   repositories.WorkerRepository
	employers repositories.EmployerRepository
}

func NewAuthService(
	db repositories.TxManager,
	workers repositories.WorkerRepository,
	employers repositories.EmployerRepository,
) AuthService {
	return &AuthServiceImpl{
		db:        db,
		workers:   workers,
		employers: employers,
	}
}

// Register создает запись роли и сразу выдает токен
func (s *AuthServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if !models.ValidRole(req.Role) {
		return nil, apperrors.ErrInvalidUserRole
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	var userID string

	err = s.db.Transaction(func(tx *gorm.DB) error {
		switch req.Role {
		case models.UserRoleWorker:
			worker := &models.Worker{
				Name:           req.Name,
				Email:          req.Email,
				PasswordHash:   hashedPassword,
				Phone:          req.Phone,
				Address:        req.Address,
				ExpectedSalary: req.ExpectedSalary,
				Status:         models.WorkerStatusAvailable,
			}
			if err := s.workers.Create(tx, worker); err != nil {
				if apperrors.Is(err, repositories.ErrWorkerAlreadyExists) {
					return apperrors.ErrEmailAlreadyExists
				}
				return apperrors.InternalError(err)
			}
			userID = worker.ID

		case models.UserRoleEmployer:
			employer := &models.Employer{
				Name:         req.Name,
				Email:        req.Email,
				PasswordHash: hashedPassword,
				Address:      req.Address,
			}
			if err := s.employers.Create(tx, employer); err != nil {
				if apperrors.Is(err, repositories.ErrEmployerAlreadyExists) {
					return apperrors.ErrEmailAlreadyExists
				}
				return apperrors.InternalError(err)
			}
			userID = employer.ID
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := auth.GenerateToken(userID, string(req.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user registered", "user_id", userID, "role", req.Role)

	return &dto.AuthResponse{
		Token:  token,
		UserID: userID,
		Role:   req.Role,
		Name:   req.Name,
	}, nil
}

// Login проверяет пароль и выдает токен. Неверный email и неверный пароль
// неотличимы для клиента.
func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if !models.ValidRole(req.Role) {
		return nil, apperrors.ErrInvalidUserRole
	}

	var (
		userID string
		name   string
		hash   string
	)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		switch req.Role {
		case models.UserRoleWorker:
			worker, err := s.workers.FindByEmail(tx, req.Email)
			if err != nil {
				if apperrors.Is(err, repositories.ErrWorkerNotFound) {
					return apperrors.ErrInvalidCredentials
				}
				return apperrors.InternalError(err)
			}
			userID, name, hash = worker.ID, worker.Name, worker.PasswordHash

		case models.UserRoleEmployer:
			employer, err := s.employers.FindByEmail(tx, req.Email)
			if err != nil {
				if apperrors.Is(err, repositories.ErrEmployerNotFound) {
					return apperrors.ErrInvalidCredentials
				}
				return apperrors.InternalError(err)
			}
			userID, name, hash = employer.ID, employer.Name, employer.PasswordHash
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !auth.CheckPasswordHash(req.Password, hash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(userID, string(req.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user logged in", "user_id", userID, "role", req.Role)

	return &dto.AuthResponse{
		Token:  token,
		UserID: userID,
		Role:   req.Role,
		Name:   name,
	}, nil
}
