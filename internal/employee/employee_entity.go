package employee

import (
	"time"

	"go-staffhub/internal/bank"
	"go-staffhub/internal/department"
	"go-staffhub/internal/designation"
	"go-staffhub/internal/region"

	"github.com/google/uuid"
)

type Employee struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID     uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeCode  string    `gorm:"type:varchar(50);not null"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Email         string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_employee_email"`
	MobileNo      string    `gorm:"type:varchar(20);not null"`
	Salary        float64   `gorm:"not null"`
	Gender        string    `gorm:"type:varchar(10);not null"`
	DOB           time.Time `gorm:"not null"`
	Address1      string    `gorm:"type:varchar(255);not null"`
	Address2      string    `gorm:"type:varchar(255);not null"`
	Password      string    `gorm:"type:varchar(255);not null"`
	Type          string    `gorm:"type:varchar(50);not null"`
	ProfilePic    string    `gorm:"type:varchar(512);not null"`
	AccountNo     string    `gorm:"type:varchar(50);not null"`
	PFAccountNo   string    `gorm:"type:varchar(50);not null"`
	IsActive      bool      `gorm:"default:true"`
	// Single slot: either null or the most recently issued refresh token.
	RefreshToken  *string   `gorm:"type:text"`
	DepartmentID  uuid.UUID `gorm:"type:uuid;not null"`
	DesignationID uuid.UUID `gorm:"type:uuid;not null"`
	BankCodeID    uuid.UUID `gorm:"type:uuid;not null"`
	CityID        uuid.UUID `gorm:"type:uuid;not null"`
	StateID       uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Department  *department.Department   `gorm:"foreignKey:DepartmentID"`
	Designation *designation.Designation `gorm:"foreignKey:DesignationID"`
	BankCode    *bank.BankCode           `gorm:"foreignKey:BankCodeID"`
	City        *region.City             `gorm:"foreignKey:CityID"`
	State       *region.State            `gorm:"foreignKey:StateID"`
}
