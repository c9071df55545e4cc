package handlers

import (
	"domwork_backend/internal/services"
	"domwork_backend/internal/validator"
)

// AppHandlers собирает все HTTP-обработчики приложения
type AppHandlers struct {
	AuthHandler     *AuthHandler
	WorkerHandler   *WorkerHandler
	EmployerHandler *EmployerHandler
	OfferHandler    *OfferHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		AuthHandler:     NewAuthHandler(base, sc.AuthService),
		WorkerHandler:   NewWorkerHandler(base, sc.WorkerService, sc.MatchingService),
		EmployerHandler: NewEmployerHandler(base, sc.EmployerService),
		OfferHandler:    NewOfferHandler(base, sc.MatchingService),
	}
}
