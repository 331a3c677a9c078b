package repository

import (
	"errors"
	"fmt"

	"absenteeism-system/internal/model"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

// AbsenceFilter narrows GetAll; nil fields are ignored.
type AbsenceFilter struct {
	EmployeeID *int
	Processed  *bool
}

type AbsenceRepository interface {
	Create(event *model.AbsenceEvent) error
	GetAll(filter AbsenceFilter) ([]model.AbsenceEvent, error)
	GetByID(id uint) (*model.AbsenceEvent, error)
}

type absenceRepository struct {
	db *gorm.DB
}

func NewAbsenceRepository(db *gorm.DB) AbsenceRepository {
	return &absenceRepository{db}
}

func (r *absenceRepository) Create(event *model.AbsenceEvent) error {
	if err := r.db.Create(event).Error; err != nil {
		return fmt.Errorf("create absence event: %w", err)
	}
	return nil
}

func (r *absenceRepository) GetAll(filter AbsenceFilter) ([]model.AbsenceEvent, error) {
	var events []model.AbsenceEvent
	query := r.db.Order("absence_date desc").Order("id desc")
	if filter.EmployeeID != nil {
		query = query.Where("employee_id = ?", *filter.EmployeeID)
	}
	if filter.Processed != nil {
		query = query.Where("processed_for_training = ?", *filter.Processed)
	}
	if err := query.Find(&events).Error; err != nil {
		return nil, fmt.Errorf("list absence events: %w", err)
	}
	return events, nil
}

func (r *absenceRepository) GetByID(id uint) (*model.AbsenceEvent, error) {
	var event model.AbsenceEvent
	err := r.db.First(&event, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get absence event %d: %w", id, err)
	}
	return &event, nil
}
