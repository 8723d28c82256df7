package lookuplog

import (
	"time"
)

type Lookup struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Label       string    `json:"label" gorm:"index:idx_label;index:idx_label_created_at"`
	Temperature float64   `json:"temperature" gorm:"column:temperature"`
	WindSpeed   float64   `json:"wind_speed" gorm:"column:wind_speed"`
	Condition   string    `json:"condition" gorm:"column:condition"`
	Icon        string    `json:"icon" gorm:"column:icon"`
	CreatedAt   time.Time `json:"created_at" gorm:"index:idx_created_at;index:idx_label_created_at"`
}

func (Lookup) TableName() string {
	return "weather_lookups"
}
