package models

type Worker struct {
	BaseModel
	Name           string `gorm:"not null"`
	Email          string `gorm:"uniqueIndex;not null"`
	PasswordHash   string `gorm:"not null"`
	Phone          string
	Address        string
	ExpectedSalary string

	// Marketplace state. Инвариант: status = hired <=> boss_id установлен.
	Status WorkerStatus `gorm:"type:varchar(20);not null;default:'available'"`
	BossID *string      `gorm:"type:uuid;index"`
	Rating *float64

	// Relations
	Boss   *Employer  `gorm:"foreignKey:BossID"`
	Offers []JobOffer `gorm:"foreignKey:WorkerID"`
}

// Hired сообщает, занят ли работник
func (w *Worker) Hired() bool {
	return w.Status == WorkerStatusHired
}

// Employ переводит работника в состояние hired у указанного работодателя
func (w *Worker) Employ(employerID string) {
	w.Status = WorkerStatusHired
	w.BossID = &employerID
}

// Release возвращает работника на рынок
func (w *Worker) Release() {
	w.Status = WorkerStatusAvailable
	w.BossID = nil
}

// EmploymentConsistent проверяет инвариант status <=> boss
func (w *Worker) EmploymentConsistent() bool {
	if w.Status == WorkerStatusHired {
		return w.BossID != nil && *w.BossID != ""
	}
	return w.BossID == nil
}
