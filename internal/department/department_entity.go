package department

import (
	"time"

	"github.com/google/uuid"
)

type Department struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_department_company_name"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_department_company_name"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
