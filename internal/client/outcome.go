package client

import (
	"strconv"
	"sync"
)

type State int

const (
	StateIdle State = iota
	StatePending
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Outcome is the state of one form. It holds exactly one variant; the
// message is the confirmation text, the rendered value, or the error text
// depending on that variant.
type Outcome struct {
	state    State
	message  string
	value    float64
	hasValue bool
}

func Idle() Outcome {
	return Outcome{state: StateIdle}
}

func Pending() Outcome {
	return Outcome{state: StatePending}
}

func Succeeded(message string) Outcome {
	return Outcome{state: StateSucceeded, message: message}
}

// SucceededWithValue carries a numeric result, rendered with one decimal.
func SucceededWithValue(v float64) Outcome {
	return Outcome{
		state:    StateSucceeded,
		message:  strconv.FormatFloat(v, 'f', 1, 64),
		value:    v,
		hasValue: true,
	}
}

func Failed(message string) Outcome {
	return Outcome{state: StateFailed, message: message}
}

func (o Outcome) State() State      { return o.state }
func (o Outcome) Message() string   { return o.message }
func (o Outcome) IsIdle() bool      { return o.state == StateIdle }
func (o Outcome) IsPending() bool   { return o.state == StatePending }
func (o Outcome) IsSucceeded() bool { return o.state == StateSucceeded }
func (o Outcome) IsFailed() bool    { return o.state == StateFailed }

// Value returns the numeric result of a successful prediction.
func (o Outcome) Value() (float64, bool) {
	return o.value, o.hasValue
}

// Option configures a Form.
type Option func(*Form)

// WithOverlappingSubmissions lets a new submission start while another is
// still in flight. Both requests then run to completion and the one that
// settles last decides the final outcome.
func WithOverlappingSubmissions() Option {
	return func(f *Form) {
		f.overlap = true
	}
}

// Form owns the outcome and the last submitted values of one form. It is
// safe for concurrent use.
type Form struct {
	mu       sync.Mutex
	outcome  Outcome
	values   FormValues
	inflight int
	overlap  bool
}

func NewForm(opts ...Option) *Form {
	f := &Form{}
	f.apply(opts)
	return f
}

func (f *Form) apply(opts []Option) {
	f.outcome = Idle()
	for _, opt := range opts {
		opt(f)
	}
}

// begin starts a submission: the prior outcome is cleared and the form moves
// to Pending. Without WithOverlappingSubmissions a second begin before the
// first settles fails with ErrSubmissionPending and changes nothing.
func (f *Form) begin(values FormValues) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.inflight > 0 && !f.overlap {
		return ErrSubmissionPending
	}
	f.inflight++
	f.values = values.Clone()
	f.outcome = Pending()
	return nil
}

// settle records the terminal outcome of a submission started with begin.
// clearValues resets the stored values in the same step.
func (f *Form) settle(o Outcome, clearValues bool) Outcome {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.inflight > 0 {
		f.inflight--
	}
	if clearValues {
		f.values = FormValues{}
	}
	f.outcome = o
	return o
}

func (f *Form) Outcome() Outcome {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.outcome
}

// Values returns a copy of the values of the last submission.
func (f *Form) Values() FormValues {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values.Clone()
}

// Submitting reports whether a request is outstanding; the submit control
// is disabled while it is true.
func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inflight > 0
}
