package usecase

import (
	"encoding/json"

	"absenteeism-system/internal/client"
	"absenteeism-system/internal/model"
	"absenteeism-system/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	DefaultLogLimit = 20
	MaxLogLimit     = 200
)

// PredictionUsecase forwards payloads to the prediction service and keeps a
// log of every successful prediction. It satisfies client.Predictor.
type PredictionUsecase struct {
	predictor client.Predictor
	logs      repository.PredictionLogRepository
}

func NewPredictionUsecase(predictor client.Predictor, logs repository.PredictionLogRepository) *PredictionUsecase {
	return &PredictionUsecase{predictor: predictor, logs: logs}
}

// Predict returns the service's estimate. A failure to write the log entry is
// reported but does not fail the prediction.
func (u *PredictionUsecase) Predict(payload client.PredictionPayload) (float64, error) {
	hours, err := u.predictor.Predict(payload)
	if err != nil {
		logrus.WithError(err).Warn("Prediction request failed")
		return 0, err
	}

	input, err := json.Marshal(payload)
	if err != nil {
		logrus.WithError(err).Error("Failed to encode prediction input")
		return hours, nil
	}

	entry := model.PredictionLog{
		RequestID:      uuid.NewString(),
		InputData:      string(input),
		PredictedHours: hours,
	}
	if err := u.logs.Create(&entry); err != nil {
		logrus.WithError(err).Error("Failed to save prediction log")
	}
	return hours, nil
}

// RecentLogs clamps limit to [1, MaxLogLimit], using DefaultLogLimit for 0.
func (u *PredictionUsecase) RecentLogs(limit int) ([]model.PredictionLog, error) {
	switch {
	case limit <= 0:
		limit = DefaultLogLimit
	case limit > MaxLogLimit:
		limit = MaxLogLimit
	}
	return u.logs.GetRecent(limit)
}
