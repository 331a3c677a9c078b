package client

import (
	"fmt"
	"time"
)

const (
	FieldReasonGroup           = "Reason_Group"
	FieldMonthValue            = "Month_Value"
	FieldDayOfTheWeek          = "Day_of_the_Week"
	FieldTransportationExpense = "Transportation_Expense"
	FieldDistanceToWork        = "Distance_to_Work"
	FieldAge                   = "Age"
	FieldDailyWorkLoadAverage  = "Daily_Work_Load_Average"
	FieldBodyMassIndex         = "Body_Mass_Index"
	FieldEducation             = "Education"
	FieldChildren              = "Children"
	FieldPet                   = "Pet"
)

// PredictionFields lists the predictor form fields in display order.
var PredictionFields = []string{
	FieldReasonGroup,
	FieldMonthValue,
	FieldDayOfTheWeek,
	FieldTransportationExpense,
	FieldDistanceToWork,
	FieldAge,
	FieldDailyWorkLoadAverage,
	FieldBodyMassIndex,
	FieldEducation,
	FieldChildren,
	FieldPet,
}

const (
	msgRequestFailed = "Error in API request"
	msgNoPrediction  = "API did not return a valid prediction."
)

// PredictionPayload is the body expected by the prediction service.
type PredictionPayload struct {
	ReasonGroup           int     `json:"Reason_Group"`
	MonthValue            int     `json:"Month_Value"`
	DayOfTheWeek          int     `json:"Day_of_the_Week"`
	TransportationExpense int     `json:"Transportation_Expense"`
	DistanceToWork        int     `json:"Distance_to_Work"`
	Age                   int     `json:"Age"`
	DailyWorkLoadAverage  float64 `json:"Daily_Work_Load_Average"`
	BodyMassIndex         int     `json:"Body_Mass_Index"`
	Education             int     `json:"Education"`
	Children              int     `json:"Children"`
	Pet                   int     `json:"Pet"`
}

// BuildPredictionPayload parses all eleven fields. It fails on the first
// field, in display order, that is missing or not a number; ranges are left
// to the prediction service.
func BuildPredictionPayload(values FormValues) (PredictionPayload, error) {
	var err error
	intField := func(name string) int {
		if err != nil {
			return 0
		}
		var n int
		n, err = values.Int(name)
		return n
	}
	floatField := func(name string) float64 {
		if err != nil {
			return 0
		}
		var f float64
		f, err = values.Float(name)
		return f
	}

	p := PredictionPayload{
		ReasonGroup:           intField(FieldReasonGroup),
		MonthValue:            intField(FieldMonthValue),
		DayOfTheWeek:          intField(FieldDayOfTheWeek),
		TransportationExpense: intField(FieldTransportationExpense),
		DistanceToWork:        intField(FieldDistanceToWork),
		Age:                   intField(FieldAge),
		DailyWorkLoadAverage:  floatField(FieldDailyWorkLoadAverage),
		BodyMassIndex:         intField(FieldBodyMassIndex),
		Education:             intField(FieldEducation),
		Children:              intField(FieldChildren),
		Pet:                   intField(FieldPet),
	}
	if err != nil {
		return PredictionPayload{}, err
	}
	return p, nil
}

// Predictor returns the estimated absence hours for a payload.
type Predictor interface {
	Predict(payload PredictionPayload) (float64, error)
}

// PredictionClient calls the external prediction service.
type PredictionClient struct {
	url     string
	timeout time.Duration
}

func NewPredictionClient(url string, timeout time.Duration) *PredictionClient {
	return &PredictionClient{url: url, timeout: timeout}
}

func (c *PredictionClient) URL() string {
	return c.url
}

// Predict issues a single POST. Every failure comes back as *Error carrying a
// message fit for display.
func (c *PredictionClient) Predict(payload PredictionPayload) (float64, error) {
	code, raw, err := postJSON(c.url, c.timeout, payload)
	if err != nil {
		return 0, &Error{Message: fmt.Sprintf("Could not reach the prediction service: %v", err), Err: err}
	}

	body := decodeObject(raw)
	if !isSuccess(code) {
		return 0, &Error{Status: code, Message: stringField(body, "error", msgRequestFailed)}
	}

	hours, ok := body["predicted_hours"].(float64)
	if !ok {
		return 0, &Error{Status: code, Message: msgNoPrediction}
	}
	return hours, nil
}

// PredictionForm is the state behind the predictor form.
type PredictionForm struct {
	Form
	predictor Predictor
}

func NewPredictionForm(predictor Predictor, opts ...Option) *PredictionForm {
	f := &PredictionForm{predictor: predictor}
	f.apply(opts)
	return f
}

// Submit runs one submission and returns its terminal outcome. While another
// submission is in flight (and overlap is not allowed) no request is made and
// the current Pending outcome is returned.
func (f *PredictionForm) Submit(values FormValues) Outcome {
	if err := f.begin(values); err != nil {
		return f.Outcome()
	}

	payload, err := BuildPredictionPayload(values)
	if err != nil {
		return f.settle(Failed(err.Error()), false)
	}

	hours, err := f.predictor.Predict(payload)
	if err != nil {
		return f.settle(Failed(err.Error()), false)
	}
	return f.settle(SucceededWithValue(hours), false)
}
