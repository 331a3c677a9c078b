package usecase

import (
	"errors"
	"fmt"
	"time"

	"absenteeism-system/internal/model"
	"absenteeism-system/internal/repository"

	"github.com/sirupsen/logrus"
)

// ValidationError marks input the caller has to fix.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// NewAbsence is the body of the absence ingestion route. Pointers tell a
// missing field apart from a zero.
type NewAbsence struct {
	EmployeeID           *int   `json:"employee_id"`
	ReasonID             *int   `json:"reason_id"`
	AbsenceDate          string `json:"absence_date"`
	AbsenteeismTimeHours *int   `json:"absenteeism_time_hours"`
}

type AbsenceUsecase struct {
	repo repository.AbsenceRepository
}

func NewAbsenceUsecase(repo repository.AbsenceRepository) *AbsenceUsecase {
	return &AbsenceUsecase{repo: repo}
}

// Register stores a new absence event, unprocessed for training. The reason
// id is stored as given; it is not checked against the reference table.
func (u *AbsenceUsecase) Register(in NewAbsence) (*model.AbsenceEvent, error) {
	switch {
	case in.EmployeeID == nil:
		return nil, &ValidationError{Message: "employee_id is required"}
	case in.ReasonID == nil:
		return nil, &ValidationError{Message: "reason_id is required"}
	case in.AbsenteeismTimeHours == nil:
		return nil, &ValidationError{Message: "absenteeism_time_hours is required"}
	case in.AbsenceDate == "":
		return nil, &ValidationError{Message: "absence_date is required"}
	}

	date, err := time.Parse(time.DateOnly, in.AbsenceDate)
	if err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("absence_date %q is not a YYYY-MM-DD date", in.AbsenceDate)}
	}

	event := model.AbsenceEvent{
		EmployeeID:           *in.EmployeeID,
		ReasonID:             *in.ReasonID,
		AbsenceDate:          date.Format(time.DateOnly),
		AbsenteeismTimeHours: *in.AbsenteeismTimeHours,
		ProcessedForTraining: false,
	}
	if err := u.repo.Create(&event); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"absence_id":  event.ID,
		"employee_id": event.EmployeeID,
		"reason_id":   event.ReasonID,
	}).Info("Absence registered")
	return &event, nil
}

func (u *AbsenceUsecase) List(filter repository.AbsenceFilter) ([]model.AbsenceEvent, error) {
	return u.repo.GetAll(filter)
}

func (u *AbsenceUsecase) Get(id uint) (*model.AbsenceEvent, error) {
	return u.repo.GetByID(id)
}
