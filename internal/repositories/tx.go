package repositories

import (
	"database/sql"

	"gorm.io/gorm"
)

// TxManager - точка входа в транзакции персистентного слоя.
// *gorm.DB удовлетворяет интерфейсу; в тестах сервисы получают
// in-memory реализацию и те же репозитории-фейки.
type TxManager interface {
	Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}
