package services

import (
	"database/sql"
	"sort"
	"sync"
	"time"

	"domwork_backend/internal/models"
	"domwork_backend/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// fakeTxManager сериализует "транзакции" одним мьютексом. Это грубее, чем
// блокировка строки работника в Postgres, но дает те же наблюдаемые
// гарантии для конкурентных сценариев в тестах.
type fakeTxManager struct {
	mu sync.Mutex
}

func (m *fakeTxManager) Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fc(nil)
}

// fakeClock выдает строго возрастающие метки времени, чтобы сортировка
// по created_at была детерминированной.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Next() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

type fakeWorkerRepo struct {
	mu      sync.Mutex
	clock   *fakeClock
	workers map[string]models.Worker
}

func newFakeWorkerRepo(clock *fakeClock) *fakeWorkerRepo {
	return &fakeWorkerRepo{clock: clock, workers: make(map[string]models.Worker)}
}

func (r *fakeWorkerRepo) FindByID(_ *gorm.DB, id string) (*models.Worker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.workers[id]
	if !ok {
		return nil, repositories.ErrWorkerNotFound
	}
	return &w, nil
}

func (r *fakeWorkerRepo) FindByIDForUpdate(db *gorm.DB, id string) (*models.Worker, error) {
	return r.FindByID(db, id)
}

func (r *fakeWorkerRepo) FindByEmail(_ *gorm.DB, email string) (*models.Worker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range r.workers {
		if w.Email == email {
			worker := w
			return &worker, nil
		}
	}
	return nil, repositories.ErrWorkerNotFound
}

func (r *fakeWorkerRepo) FindAll(_ *gorm.DB, limit, offset int) ([]models.Worker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]models.Worker, 0, len(r.workers))
	for _, w := range r.workers {
		all = append(all, w)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	if offset >= len(all) {
		return []models.Worker{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *fakeWorkerRepo) FindByStatus(_ *gorm.DB, status models.WorkerStatus, limit, offset int) ([]models.Worker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	filtered := make([]models.Worker, 0, len(r.workers))
	for _, w := range r.workers {
		if w.Status == status {
			filtered = append(filtered, w)
		}
	}
	sort.Slice(filtered, func(i, j int) bool { return filtered[i].CreatedAt.Before(filtered[j].CreatedAt) })
	if offset >= len(filtered) {
		return []models.Worker{}, nil
	}
	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[offset:end], nil
}

func (r *fakeWorkerRepo) Create(_ *gorm.DB, worker *models.Worker) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range r.workers {
		if w.Email == worker.Email {
			return repositories.ErrWorkerAlreadyExists
		}
	}
	if worker.ID == "" {
		worker.ID = uuid.NewString()
	}
	worker.CreatedAt = r.clock.Next()
	worker.UpdatedAt = worker.CreatedAt
	r.workers[worker.ID] = *worker
	return nil
}

func (r *fakeWorkerRepo) Update(_ *gorm.DB, worker *models.Worker) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.workers[worker.ID]; !ok {
		return repositories.ErrWorkerNotFound
	}
	worker.UpdatedAt = r.clock.Next()
	r.workers[worker.ID] = *worker
	return nil
}

func (r *fakeWorkerRepo) Delete(_ *gorm.DB, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.workers[id]; !ok {
		return repositories.ErrWorkerNotFound
	}
	delete(r.workers, id)
	return nil
}

func (r *fakeWorkerRepo) CountAll(_ *gorm.DB) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.workers)), nil
}

type fakeEmployerRepo struct {
	mu        sync.Mutex
	clock     *fakeClock
	employers map[string]models.Employer
}

func newFakeEmployerRepo(clock *fakeClock) *fakeEmployerRepo {
	return &fakeEmployerRepo{clock: clock, employers: make(map[string]models.Employer)}
}

func (r *fakeEmployerRepo) FindByID(_ *gorm.DB, id string) (*models.Employer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.employers[id]
	if !ok {
		return nil, repositories.ErrEmployerNotFound
	}
	return &e, nil
}

func (r *fakeEmployerRepo) FindByEmail(_ *gorm.DB, email string) (*models.Employer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.employers {
		if e.Email == email {
			employer := e
			return &employer, nil
		}
	}
	return nil, repositories.ErrEmployerNotFound
}

func (r *fakeEmployerRepo) Create(_ *gorm.DB, employer *models.Employer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.employers {
		if e.Email == employer.Email {
			return repositories.ErrEmployerAlreadyExists
		}
	}
	if employer.ID == "" {
		employer.ID = uuid.NewString()
	}
	employer.CreatedAt = r.clock.Next()
	employer.UpdatedAt = employer.CreatedAt
	r.employers[employer.ID] = *employer
	return nil
}

func (r *fakeEmployerRepo) Update(_ *gorm.DB, employer *models.Employer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.employers[employer.ID]; !ok {
		return repositories.ErrEmployerNotFound
	}
	employer.UpdatedAt = r.clock.Next()
	r.employers[employer.ID] = *employer
	return nil
}

func (r *fakeEmployerRepo) Delete(_ *gorm.DB, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.employers[id]; !ok {
		return repositories.ErrEmployerNotFound
	}
	delete(r.employers, id)
	return nil
}

type fakeOfferRepo struct {
	mu     sync.Mutex
	clock  *fakeClock
	offers map[string]models.JobOffer
}

func newFakeOfferRepo(clock *fakeClock) *fakeOfferRepo {
	return &fakeOfferRepo{clock: clock, offers: make(map[string]models.JobOffer)}
}

func (r *fakeOfferRepo) Create(_ *gorm.DB, offer *models.JobOffer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if offer.ID == "" {
		offer.ID = uuid.NewString()
	}
	offer.CreatedAt = r.clock.Next()
	offer.UpdatedAt = offer.CreatedAt
	r.offers[offer.ID] = *offer
	return nil
}

func (r *fakeOfferRepo) FindByID(_ *gorm.DB, id string) (*models.JobOffer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.offers[id]
	if !ok {
		return nil, repositories.ErrOfferNotFound
	}
	return &o, nil
}

func (r *fakeOfferRepo) FindByWorker(_ *gorm.DB, workerID string) ([]models.JobOffer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.filter(func(o models.JobOffer) bool { return o.WorkerID == workerID }), nil
}

func (r *fakeOfferRepo) FindByWorkerAndStatus(_ *gorm.DB, workerID string, status models.OfferStatus) ([]models.JobOffer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.filter(func(o models.JobOffer) bool {
		return o.WorkerID == workerID && o.Status == status
	}), nil
}

func (r *fakeOfferRepo) FindByEmployer(_ *gorm.DB, employerID string, status models.OfferStatus) ([]models.JobOffer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.filter(func(o models.JobOffer) bool {
		if o.EmployerID != employerID {
			return false
		}
		return status == "" || o.Status == status
	}), nil
}

func (r *fakeOfferRepo) Update(_ *gorm.DB, offer *models.JobOffer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.offers[offer.ID]; !ok {
		return repositories.ErrOfferNotFound
	}
	offer.UpdatedAt = r.clock.Next()
	r.offers[offer.ID] = *offer
	return nil
}

// filter вызывается под мьютексом
func (r *fakeOfferRepo) filter(keep func(models.JobOffer) bool) []models.JobOffer {
	matched := make([]models.JobOffer, 0, len(r.offers))
	for _, o := range r.offers {
		if keep(o) {
			matched = append(matched, o)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.Before(matched[j].CreatedAt) })
	return matched
}

// testEnv собирает фейковое хранилище и сервисы поверх него
type testEnv struct {
	txm       *fakeTxManager
	workers   *fakeWorkerRepo
	employers *fakeEmployerRepo
	offers    *fakeOfferRepo

	auth        AuthService
	workerSvc   WorkerService
	employerSvc EmployerService
	matching    MatchingService
}

func newTestEnv() *testEnv {
	clock := newFakeClock()
	txm := &fakeTxManager{}
	workers := newFakeWorkerRepo(clock)
	employers := newFakeEmployerRepo(clock)
	offers := newFakeOfferRepo(clock)

	return &testEnv{
		txm:         txm,
		workers:     workers,
		employers:   employers,
		offers:      offers,
		auth:        NewAuthService(txm, workers, employers),
		workerSvc:   NewWorkerService(txm, workers, offers),
		employerSvc: NewEmployerService(txm, employers, offers),
		matching:    NewMatchingService(txm, workers, employers, offers),
	}
}

func (e *testEnv) seedWorker(name, email string) *models.Worker {
	worker := &models.Worker{
		Name:         name,
		Email:        email,
		PasswordHash: "hash",
		Status:       models.WorkerStatusAvailable,
	}
	if err := e.workers.Create(nil, worker); err != nil {
		panic(err)
	}
	return worker
}

func (e *testEnv) seedEmployer(name, email string) *models.Employer {
	employer := &models.Employer{
		Name:         name,
		Email:        email,
		PasswordHash: "hash",
	}
	if err := e.employers.Create(nil, employer); err != nil {
		panic(err)
	}
	return employer
}
