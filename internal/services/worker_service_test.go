package services

import (
	"context"
	"net/http"
	"testing"

	"domwork_backend/internal/models"
	"domwork_backend/internal/repositories"
	"domwork_backend/internal/services/dto"
	"domwork_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// hookedWorkerRepo перехватывает чтения строки работника, чтобы
// воспроизвести конкурентный коммит между чтением и записью.
type hookedWorkerRepo struct {
	repositories.WorkerRepository
	beforeLockedRead func()
	afterPlainRead   func()
}

func (r *hookedWorkerRepo) FindByID(db *gorm.DB, id string) (*models.Worker, error) {
	w, err := r.WorkerRepository.FindByID(db, id)
	if err == nil && r.afterPlainRead != nil {
		r.afterPlainRead()
	}
	return w, err
}

func (r *hookedWorkerRepo) FindByIDForUpdate(db *gorm.DB, id string) (*models.Worker, error) {
	if r.beforeLockedRead != nil {
		r.beforeLockedRead()
	}
	return r.WorkerRepository.FindByIDForUpdate(db, id)
}

func strPtr(s string) *string { return &s }

func TestGetWorker(t *testing.T) {
	env := newTestEnv()
	worker := env.seedWorker("Ivan", "ivan@example.com")

	resp, err := env.workerSvc.GetWorker(context.Background(), worker.ID)
	require.NoError(t, err)
	assert.Equal(t, worker.ID, resp.ID)
	assert.Equal(t, "Ivan", resp.Name)
	assert.Equal(t, models.WorkerStatusAvailable, resp.Status)

	_, err = env.workerSvc.GetWorker(context.Background(), "00000000-0000-0000-0000-000000000000")
	requireAppError(t, err, apperrors.CodeNotFound, http.StatusNotFound)
}

func TestListWorkers_Pagination(t *testing.T) {
	env := newTestEnv()
	for i := 0; i < 5; i++ {
		env.seedWorker("W", "w"+string(rune('a'+i))+"@example.com")
	}

	page1, err := env.workerSvc.ListWorkers(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Len(t, page1.Workers, 2)
	assert.Equal(t, int64(5), page1.Total)

	page3, err := env.workerSvc.ListWorkers(context.Background(), 3, 2)
	require.NoError(t, err)
	assert.Len(t, page3.Workers, 1)
}

func TestUpdateWorker_PartialUpdate(t *testing.T) {
	env := newTestEnv()
	worker := env.seedWorker("Ivan", "ivan@example.com")

	resp, err := env.workerSvc.UpdateWorker(context.Background(), worker.ID, &dto.UpdateWorkerRequest{
		Name:  strPtr("Ivan Petrov"),
		Phone: strPtr("+77001234567"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ivan Petrov", resp.Name)
	assert.Equal(t, "+77001234567", resp.Phone)
	// Нетронутые поля сохраняются
	assert.Equal(t, "ivan@example.com", resp.Email)
}

// Найм коммитится, пока обновление профиля ждет блокировку строки.
// Обновление обязано читать под блокировкой и видеть свежие
// status/boss_id: запись в репозитории уносит все колонки, и чтение
// без блокировки молча откатило бы найм.
func TestUpdateWorker_PreservesConcurrentHire(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	employer := env.seedEmployer("Acme", "acme@example.com")
	worker := env.seedWorker("Ivan", "ivan@example.com")

	commitHire := func() {
		stored, err := env.workers.FindByID(nil, worker.ID)
		require.NoError(t, err)
		if stored.Hired() {
			return
		}
		require.NoError(t, env.offers.Create(nil, &models.JobOffer{
			EmployerID: employer.ID,
			WorkerID:   worker.ID,
			Status:     models.OfferStatusAccepted,
		}))
		stored.Employ(employer.ID)
		require.NoError(t, env.workers.Update(nil, stored))
	}

	hooked := &hookedWorkerRepo{
		WorkerRepository: env.workers,
		// Найм успевает закоммититься до захвата блокировки
		beforeLockedRead: commitHire,
		// ...и сразу после чтения без блокировки, если код регрессирует
		afterPlainRead: commitHire,
	}
	svc := NewWorkerService(env.txm, hooked, env.offers)

	_, err := svc.UpdateWorker(ctx, worker.ID, &dto.UpdateWorkerRequest{
		Name: strPtr("Ivan Petrov"),
	})
	require.NoError(t, err)

	stored, err := env.workers.FindByID(nil, worker.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ivan Petrov", stored.Name)
	assert.True(t, stored.Hired(), "profile update must not revert a committed hire")
	require.NotNil(t, stored.BossID)
	assert.Equal(t, employer.ID, *stored.BossID)
	assert.True(t, stored.EmploymentConsistent())

	accepted, err := env.offers.FindByWorkerAndStatus(nil, worker.ID, models.OfferStatusAccepted)
	require.NoError(t, err)
	assert.Len(t, accepted, 1)
}

func TestUpdateWorker_EmailTaken(t *testing.T) {
	env := newTestEnv()
	worker := env.seedWorker("Ivan", "ivan@example.com")
	env.seedWorker("Petr", "petr@example.com")

	_, err := env.workerSvc.UpdateWorker(context.Background(), worker.ID, &dto.UpdateWorkerRequest{
		Email: strPtr("petr@example.com"),
	})
	requireAppError(t, err, apperrors.CodeAlreadyExists, http.StatusConflict)
}

func TestDeleteWorker_BlockedWhileHired(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	employer := env.seedEmployer("Acme", "acme@example.com")
	worker := env.seedWorker("Ivan", "ivan@example.com")

	offer, err := env.matching.Hire(ctx, employer.ID, worker.ID)
	require.NoError(t, err)

	err = env.workerSvc.DeleteWorker(ctx, worker.ID)
	requireAppError(t, err, apperrors.CodeConflict, http.StatusConflict)

	// После завершения работы аккаунт удаляется
	_, err = env.matching.CompleteJob(ctx, worker.ID, offer.ID, nil)
	require.NoError(t, err)

	err = env.workerSvc.DeleteWorker(ctx, worker.ID)
	require.NoError(t, err)

	_, err = env.workers.FindByID(nil, worker.ID)
	assert.ErrorIs(t, err, repositories.ErrWorkerNotFound)
}

func TestDeleteEmployer_BlockedWhileOfferOpen(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	employer := env.seedEmployer("Acme", "acme@example.com")
	worker := env.seedWorker("Ivan", "ivan@example.com")

	offer, err := env.matching.Hire(ctx, employer.ID, worker.ID)
	require.NoError(t, err)

	err = env.employerSvc.DeleteEmployer(ctx, employer.ID)
	requireAppError(t, err, apperrors.CodeConflict, http.StatusConflict)

	_, err = env.matching.CompleteJob(ctx, worker.ID, offer.ID, nil)
	require.NoError(t, err)

	err = env.employerSvc.DeleteEmployer(ctx, employer.ID)
	require.NoError(t, err)
}

func TestUpdateEmployer(t *testing.T) {
	env := newTestEnv()
	employer := env.seedEmployer("Acme", "acme@example.com")

	resp, err := env.employerSvc.UpdateEmployer(context.Background(), employer.ID, &dto.UpdateEmployerRequest{
		Name:    strPtr("Acme Corp"),
		Address: strPtr("Almaty"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", resp.Name)
	assert.Equal(t, "Almaty", resp.Address)
}
