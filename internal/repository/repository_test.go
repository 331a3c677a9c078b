package repository

import (
	"fmt"
	"testing"

	"absenteeism-system/config"
	"absenteeism-system/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.ConnectDB(config.Config{DBDriver: "sqlite", DBDSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestAbsenceRepository_CreateAndGet(t *testing.T) {
	repo := NewAbsenceRepository(newTestDB(t))

	event := model.AbsenceEvent{EmployeeID: 11, ReasonID: 22, AbsenceDate: "2025-03-14", AbsenteeismTimeHours: 8}
	require.NoError(t, repo.Create(&event))
	require.NotZero(t, event.ID)

	got, err := repo.GetByID(event.ID)
	require.NoError(t, err)
	assert.Equal(t, 11, got.EmployeeID)
	assert.Equal(t, "2025-03-14", got.AbsenceDate)
	assert.False(t, got.ProcessedForTraining)
}

func TestAbsenceRepository_GetByIDMissing(t *testing.T) {
	repo := NewAbsenceRepository(newTestDB(t))

	_, err := repo.GetByID(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAbsenceRepository_GetAllFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewAbsenceRepository(db)

	for i, emp := range []int{1, 2, 1} {
		event := model.AbsenceEvent{EmployeeID: emp, ReasonID: 23, AbsenceDate: fmt.Sprintf("2025-01-0%d", i+1), AbsenteeismTimeHours: 2}
		require.NoError(t, repo.Create(&event))
	}
	require.NoError(t, db.Model(&model.AbsenceEvent{}).Where("absence_date = ?", "2025-01-03").
		Update("processed_for_training", true).Error)

	one := 1
	processed := false

	tests := []struct {
		name      string
		filter    AbsenceFilter
		wantDates []string
	}{
		{name: "no filter newest first", filter: AbsenceFilter{}, wantDates: []string{"2025-01-03", "2025-01-02", "2025-01-01"}},
		{name: "by employee", filter: AbsenceFilter{EmployeeID: &one}, wantDates: []string{"2025-01-03", "2025-01-01"}},
		{name: "unprocessed only", filter: AbsenceFilter{Processed: &processed}, wantDates: []string{"2025-01-02", "2025-01-01"}},
		{name: "both", filter: AbsenceFilter{EmployeeID: &one, Processed: &processed}, wantDates: []string{"2025-01-01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := repo.GetAll(tt.filter)
			require.NoError(t, err)

			dates := make([]string, 0, len(events))
			for _, e := range events {
				dates = append(dates, e.AbsenceDate)
			}
			assert.Equal(t, tt.wantDates, dates)
		})
	}
}

func TestPredictionLogRepository_GetRecent(t *testing.T) {
	repo := NewPredictionLogRepository(newTestDB(t))

	for i := range 3 {
		entry := model.PredictionLog{
			RequestID:      fmt.Sprintf("req-%d", i),
			InputData:      `{"Age":38}`,
			PredictedHours: float64(i),
		}
		require.NoError(t, repo.Create(&entry))
	}

	entries, err := repo.GetRecent(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "req-2", entries[0].RequestID)
	assert.Equal(t, "req-1", entries[1].RequestID)
}
