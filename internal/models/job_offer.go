package models

// JobOffer - связка работодатель-работник с жизненным циклом
// pending -> accepted -> completed. Rating выставляется только при завершении.
type JobOffer struct {
	BaseModel
	EmployerID string      `gorm:"type:uuid;not null;index"`
	WorkerID   string      `gorm:"type:uuid;not null;index"`
	Status     OfferStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	Rating     *int        `gorm:"check:rating >= 1 AND rating <= 5"`

	// Relations
	Employer Employer `gorm:"foreignKey:EmployerID"`
	Worker   Worker   `gorm:"foreignKey:WorkerID"`
}

// MeanRating считает средний рейтинг по завершенным офферам с оценкой.
// Пересчитывается с нуля по всей истории, не инкрементально.
func MeanRating(offers []JobOffer) *float64 {
	var sum, count int
	for _, o := range offers {
		if o.Status == OfferStatusCompleted && o.Rating != nil {
			sum += *o.Rating
			count++
		}
	}
	if count == 0 {
		return nil
	}
	mean := float64(sum) / float64(count)
	return &mean
}
