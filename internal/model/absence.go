package model

import "gorm.io/gorm"

// AbsenceEvent is a labeled absence waiting to be picked up for retraining.
type AbsenceEvent struct {
	gorm.Model
	EmployeeID           int    `json:"employee_id" gorm:"index;not null"`
	ReasonID             int    `json:"reason_id" gorm:"not null"`
	AbsenceDate          string `json:"absence_date" gorm:"size:10;not null"` // Format YYYY-MM-DD
	AbsenteeismTimeHours int    `json:"absenteeism_time_hours"`
	ProcessedForTraining bool   `json:"processed_for_training" gorm:"default:false"`
}
