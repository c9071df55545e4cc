package models

type UserRole string
type WorkerStatus string
type OfferStatus string

const (
	UserRoleWorker   UserRole = "worker"
	UserRoleEmployer UserRole = "employer"

	WorkerStatusAvailable WorkerStatus = "available"
	WorkerStatusHired     WorkerStatus = "hired"

	OfferStatusPending   OfferStatus = "pending"
	OfferStatusAccepted  OfferStatus = "accepted"
	OfferStatusCompleted OfferStatus = "completed"
)

// ValidRole проверяет, что роль известна системе
func ValidRole(role UserRole) bool {
	return role == UserRoleWorker || role == UserRoleEmployer
}

// ValidOfferStatus проверяет, что статус предложения известен системе
func ValidOfferStatus(status OfferStatus) bool {
	switch status {
	case OfferStatusPending, OfferStatusAccepted, OfferStatusCompleted:
		return true
	}
	return false
}
