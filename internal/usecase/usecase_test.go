package usecase

import (
	"encoding/json"
	"errors"
	"testing"

	"absenteeism-system/config"
	"absenteeism-system/internal/client"
	"absenteeism-system/internal/model"
	"absenteeism-system/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.ConnectDB(config.Config{DBDriver: "sqlite", DBDSN: ":memory:"})
	require.NoError(t, err)
	return db
}

func intPtr(n int) *int { return &n }

func TestAbsenceUsecase_Register(t *testing.T) {
	uc := NewAbsenceUsecase(repository.NewAbsenceRepository(newTestDB(t)))

	event, err := uc.Register(NewAbsence{
		EmployeeID:           intPtr(11),
		ReasonID:             intPtr(0),
		AbsenceDate:          "2025-03-14",
		AbsenteeismTimeHours: intPtr(0),
	})
	require.NoError(t, err)

	stored, err := uc.Get(event.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.ReasonID, "zero is a valid reason id")
	assert.False(t, stored.ProcessedForTraining)
}

func TestAbsenceUsecase_RegisterValidation(t *testing.T) {
	uc := NewAbsenceUsecase(repository.NewAbsenceRepository(newTestDB(t)))
	valid := func() NewAbsence {
		return NewAbsence{EmployeeID: intPtr(1), ReasonID: intPtr(22), AbsenceDate: "2025-01-02", AbsenteeismTimeHours: intPtr(4)}
	}

	tests := []struct {
		name    string
		mutate  func(*NewAbsence)
		wantErr string
	}{
		{name: "missing employee", mutate: func(n *NewAbsence) { n.EmployeeID = nil }, wantErr: "employee_id is required"},
		{name: "missing reason", mutate: func(n *NewAbsence) { n.ReasonID = nil }, wantErr: "reason_id is required"},
		{name: "missing hours", mutate: func(n *NewAbsence) { n.AbsenteeismTimeHours = nil }, wantErr: "absenteeism_time_hours is required"},
		{name: "missing date", mutate: func(n *NewAbsence) { n.AbsenceDate = "" }, wantErr: "absence_date is required"},
		{name: "bad date", mutate: func(n *NewAbsence) { n.AbsenceDate = "14/03/2025" }, wantErr: `absence_date "14/03/2025" is not a YYYY-MM-DD date`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid()
			tt.mutate(&in)

			_, err := uc.Register(in)
			require.Error(t, err)
			assert.True(t, IsValidation(err))
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestAbsenceUsecase_UnknownReasonIsStored(t *testing.T) {
	uc := NewAbsenceUsecase(repository.NewAbsenceRepository(newTestDB(t)))

	event, err := uc.Register(NewAbsence{EmployeeID: intPtr(1), ReasonID: intPtr(99), AbsenceDate: "2025-01-02", AbsenteeismTimeHours: intPtr(1)})
	require.NoError(t, err)
	assert.Equal(t, 99, event.ReasonID)
}

type stubPredictor struct {
	hours float64
	err   error
	calls int
}

func (s *stubPredictor) Predict(client.PredictionPayload) (float64, error) {
	s.calls++
	return s.hours, s.err
}

func TestPredictionUsecase_LogsSuccess(t *testing.T) {
	logs := repository.NewPredictionLogRepository(newTestDB(t))
	uc := NewPredictionUsecase(&stubPredictor{hours: 4.58}, logs)

	hours, err := uc.Predict(client.PredictionPayload{ReasonGroup: 3, Age: 40, DailyWorkLoadAverage: 250.5})
	require.NoError(t, err)
	assert.Equal(t, 4.58, hours)

	entries, err := uc.RecentLogs(0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Len(t, entries[0].RequestID, 36)
	assert.Equal(t, 4.58, entries[0].PredictedHours)

	var input client.PredictionPayload
	require.NoError(t, json.Unmarshal([]byte(entries[0].InputData), &input))
	assert.Equal(t, 40, input.Age)
}

func TestPredictionUsecase_FailureIsNotLogged(t *testing.T) {
	logs := repository.NewPredictionLogRepository(newTestDB(t))
	uc := NewPredictionUsecase(&stubPredictor{err: errors.New("bad input")}, logs)

	_, err := uc.Predict(client.PredictionPayload{})
	assert.EqualError(t, err, "bad input")

	entries, err := uc.RecentLogs(10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

type failingLogs struct{}

func (failingLogs) Create(*model.PredictionLog) error            { return errors.New("disk full") }
func (failingLogs) GetRecent(int) ([]model.PredictionLog, error) { return nil, nil }

func TestPredictionUsecase_LogFailureKeepsPrediction(t *testing.T) {
	uc := NewPredictionUsecase(&stubPredictor{hours: 2}, failingLogs{})

	hours, err := uc.Predict(client.PredictionPayload{})
	require.NoError(t, err)
	assert.Equal(t, 2.0, hours)
}
