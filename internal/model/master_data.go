package model

import (
	"gorm.io/gorm"
)

// Reason is the persisted copy of ReasonEntry so SQL on absence_events can
// join on reason_id. Code 0 is a real row, so the id column is not reused.
type Reason struct {
	gorm.Model
	Code        int    `json:"code" gorm:"uniqueIndex;not null"`
	Description string `json:"description"`
	GroupCode   int    `json:"group" gorm:"column:reason_group"`
}

type EducationLevel struct {
	gorm.Model
	Code  int    `json:"code" gorm:"uniqueIndex;not null"`
	Label string `json:"label"`
}
