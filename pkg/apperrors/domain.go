package apperrors

import (
	"net/http"
)

/*
Фабрики и предопределенные переменные для доменных ошибок.
Репозитории возвращают свои sentinel-ошибки; сервисы переводят их сюда.
*/

// ErrNotFound - фабрика для ошибки "не найдено" (404)
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- Auth ---

// ErrInvalidUserRole - операция не предусмотрена для роли пользователя
var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"auth",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

// ErrEmailAlreadyExists - email уже зарегистрирован в рамках этой роли
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

// ErrInvalidCredentials - неверный email или пароль
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrInvalidToken - неверный или просроченный токен
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrWeakPassword - пароль слишком слабый
var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 6 characters required.",
	http.StatusBadRequest,
)

// --- Matching ---

// ErrWorkerAlreadyHired - работник уже нанят, повторный найм невозможен
var ErrWorkerAlreadyHired = New(
	CodeConflict,
	"matching",
	"Worker is already hired",
	http.StatusConflict,
)

// ErrOfferNotPending - принять можно только оффер в статусе pending
var ErrOfferNotPending = New(
	CodeInvalidStatus,
	"matching",
	"Offer is not in pending status",
	http.StatusConflict,
)

// ErrNoActiveJob - у работника нет открытой (accepted) работы для завершения
var ErrNoActiveJob = New(
	CodeConflict,
	"matching",
	"Worker has no active job to complete",
	http.StatusConflict,
)

// ErrAccountHasActiveJob - удаление аккаунта заблокировано открытым оффером
var ErrAccountHasActiveJob = New(
	CodeConflict,
	"matching",
	"Account has an active job offer and cannot be deleted",
	http.StatusConflict,
)
