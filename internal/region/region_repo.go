package region

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=region_repo.go -destination=mock/region_repo_mock.go -package=mock
type Repository interface {
	FindStateByName(ctx context.Context, stateName string) (*State, error)
	FindCityByStateAndName(ctx context.Context, stateID string, cityName string) (*City, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindStateByName(ctx context.Context, stateName string) (*State, error) {
	var state State
	err := r.db.WithContext(ctx).First(&state, "state_name = ?", stateName).Error
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (r *repository) FindCityByStateAndName(ctx context.Context, stateID string, cityName string) (*City, error) {
	var city City
	err := r.db.WithContext(ctx).
		Where("state_id = ?", stateID).
		First(&city, "city_name = ?", cityName).Error
	if err != nil {
		return nil, err
	}
	return &city, nil
}
