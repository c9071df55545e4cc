package services

// ServiceContainer собирает все сервисы приложения для передачи в хэндлеры
type ServiceContainer struct {
	AuthService     AuthService
	WorkerService   WorkerService
	EmployerService EmployerService
	MatchingService MatchingService
}
