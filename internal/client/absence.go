package client

import (
	"fmt"
	"time"
)

const (
	FieldEmployeeID           = "employee_id"
	FieldReasonID             = "reason_id"
	FieldAbsenceDate          = "absence_date"
	FieldAbsenteeismTimeHours = "absenteeism_time_hours"
)

// AbsenceFields lists the absence form fields in display order.
var AbsenceFields = []string{
	FieldEmployeeID,
	FieldReasonID,
	FieldAbsenceDate,
	FieldAbsenteeismTimeHours,
}

const (
	MsgAbsenceDateRequired = "Absence date is required."
	msgRegisterFailed      = "Failed to register absence"
	msgRegistered          = "Absence registered successfully."
)

// AbsenceRecord is the body accepted by the absence ingestion route.
type AbsenceRecord struct {
	EmployeeID           int    `json:"employee_id"`
	ReasonID             int    `json:"reason_id"`
	AbsenceDate          string `json:"absence_date"`
	AbsenteeismTimeHours int    `json:"absenteeism_time_hours"`
}

// BuildAbsenceRecord parses the three integer fields and passes the date
// through untouched. An empty date is rejected here so no request is sent.
// reason_id is not checked against the reference table.
func BuildAbsenceRecord(values FormValues) (AbsenceRecord, error) {
	employeeID, err := values.Int(FieldEmployeeID)
	if err != nil {
		return AbsenceRecord{}, err
	}
	reasonID, err := values.Int(FieldReasonID)
	if err != nil {
		return AbsenceRecord{}, err
	}
	hours, err := values.Int(FieldAbsenteeismTimeHours)
	if err != nil {
		return AbsenceRecord{}, err
	}

	date := values.Get(FieldAbsenceDate)
	if date == "" {
		return AbsenceRecord{}, &Error{Message: MsgAbsenceDateRequired}
	}

	return AbsenceRecord{
		EmployeeID:           employeeID,
		ReasonID:             reasonID,
		AbsenceDate:          date,
		AbsenteeismTimeHours: hours,
	}, nil
}

// Registrar stores an absence record and returns a confirmation message.
type Registrar interface {
	Register(record AbsenceRecord) (string, error)
}

// AbsenceClient posts records to the absence ingestion route.
type AbsenceClient struct {
	url     string
	timeout time.Duration
}

func NewAbsenceClient(url string, timeout time.Duration) *AbsenceClient {
	return &AbsenceClient{url: url, timeout: timeout}
}

func (c *AbsenceClient) Register(record AbsenceRecord) (string, error) {
	code, raw, err := postJSON(c.url, c.timeout, record)
	if err != nil {
		return "", &Error{Message: fmt.Sprintf("Could not reach the absence service: %v", err), Err: err}
	}

	// A body that is not a JSON object is not a confirmation, even on 2xx.
	body := decodeObject(raw)
	if !isSuccess(code) || body == nil || body["success"] == false {
		return "", &Error{Status: code, Message: stringField(body, "error", msgRegisterFailed)}
	}
	return stringField(body, "message", msgRegistered), nil
}

// AbsenceForm is the state behind the absence registration form.
type AbsenceForm struct {
	Form
	registrar Registrar
}

func NewAbsenceForm(registrar Registrar, opts ...Option) *AbsenceForm {
	f := &AbsenceForm{registrar: registrar}
	f.apply(opts)
	return f
}

// Submit runs one submission. The stored values are cleared only once the
// registration is confirmed; on failure they stay for correction.
func (f *AbsenceForm) Submit(values FormValues) Outcome {
	if err := f.begin(values); err != nil {
		return f.Outcome()
	}

	record, err := BuildAbsenceRecord(values)
	if err != nil {
		return f.settle(Failed(err.Error()), false)
	}

	message, err := f.registrar.Register(record)
	if err != nil {
		return f.settle(Failed(err.Error()), false)
	}
	return f.settle(Succeeded(message), true)
}
