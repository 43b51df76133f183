package designation

import (
	"time"

	"github.com/google/uuid"
)

type Designation struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_designation_company_name"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_designation_company_name"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
