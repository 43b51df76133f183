package region

import (
	"time"

	"github.com/google/uuid"
)

type State struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	StateName string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Cities    []City    `gorm:"foreignKey:StateID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type City struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	StateID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_city_state_name"`
	CityName  string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_city_state_name"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
