package repository

import (
	"fmt"

	"absenteeism-system/internal/model"

	"gorm.io/gorm"
)

type PredictionLogRepository interface {
	Create(entry *model.PredictionLog) error
	GetRecent(limit int) ([]model.PredictionLog, error)
}

type predictionLogRepository struct {
	db *gorm.DB
}

func NewPredictionLogRepository(db *gorm.DB) PredictionLogRepository {
	return &predictionLogRepository{db}
}

func (r *predictionLogRepository) Create(entry *model.PredictionLog) error {
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("create prediction log: %w", err)
	}
	return nil
}

// GetRecent returns the newest entries first.
func (r *predictionLogRepository) GetRecent(limit int) ([]model.PredictionLog, error) {
	var entries []model.PredictionLog
	if err := r.db.Order("id desc").Limit(limit).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list prediction logs: %w", err)
	}
	return entries, nil
}
