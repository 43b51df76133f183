package bank

import (
	"time"

	"github.com/google/uuid"
)

type BankCode struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code      string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	BankName  string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
