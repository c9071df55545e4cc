package models

type Employer struct {
	BaseModel
	Name         string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Address      string

	// Relations
	Offers []JobOffer `gorm:"foreignKey:EmployerID"`
}
