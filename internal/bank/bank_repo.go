package bank

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=bank_repo.go -destination=mock/bank_repo_mock.go -package=mock
type Repository interface {
	FindByCode(ctx context.Context, code string) (*BankCode, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByCode(ctx context.Context, code string) (*BankCode, error) {
	var bc BankCode
	err := r.db.WithContext(ctx).First(&bc, "code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &bc, nil
}
