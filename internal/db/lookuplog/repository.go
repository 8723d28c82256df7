package lookuplog

import (
	"time"

	"gorm.io/gorm"
	"ulascansenturk/weather-lookup/internal/service"
)

type Repository interface {
	LogLookup(snapshot service.WeatherSnapshot) error
}

type LookupSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &LookupSQLRepository{db: db}
}

func (r *LookupSQLRepository) LogLookup(snapshot service.WeatherSnapshot) error {
	lookup := Lookup{
		Label:       snapshot.LocationLabel,
		Temperature: snapshot.Temperature,
		WindSpeed:   snapshot.WindSpeed,
		Condition:   snapshot.Condition,
		Icon:        snapshot.Icon,
		CreatedAt:   time.Now(),
	}

	return r.db.Create(&lookup).Error
}
