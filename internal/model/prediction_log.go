package model

import "gorm.io/gorm"

type PredictionLog struct {
	gorm.Model
	RequestID      string  `json:"request_id" gorm:"size:36;uniqueIndex"`
	InputData      string  `json:"input_data" gorm:"type:text"` // payload as sent, JSON
	PredictedHours float64 `json:"predicted_hours"`
}
