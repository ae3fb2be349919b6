package sched

import "time"

// FireKind distinguishes which logical deadline a DualDeadlineTimer fire
// corresponds to.
type FireKind int

const (
	ProcessArrival FireKind = iota
	TimesliceOver
)

// DefaultQuantumUnits is RR_TIMES_OF_UNIT from the reference
// implementation: the number of time units in one RR slice.
const DefaultQuantumUnits = 500

// DualDeadlineTimer models two independent countdowns — next-arrival and
// current-timeslice — over a single physical one-shot timer. Only the
// applicable deadline(s) participate in arm()/classify_fire(); debit
// preserves whichever deadline did not fire across a fire.
type DualDeadlineTimer struct {
	unit         time.Duration
	quantumUnits int

	arrivalRemaining time.Duration
	arrivalValid     bool

	timesliceRemaining time.Duration
	timesliceValid     bool

	osTimer *time.Timer
}

// NewDualDeadlineTimer builds a timer calibrated to unit, using
// quantumUnits time units per RR slice (DefaultQuantumUnits if <= 0).
func NewDualDeadlineTimer(unit time.Duration, quantumUnits int) *DualDeadlineTimer {
	if quantumUnits <= 0 {
		quantumUnits = DefaultQuantumUnits
	}
	return &DualDeadlineTimer{unit: unit, quantumUnits: quantumUnits}
}

// ReloadArrival sets arrival_remaining to time_unit * gap and marks it
// valid. gap is the number of time units until the next arrival.
func (t *DualDeadlineTimer) ReloadArrival(gap int) {
	t.arrivalRemaining = t.unit * time.Duration(gap)
	t.arrivalValid = true
}

// ClearArrival invalidates the arrival deadline (ArrivalQueue is empty).
func (t *DualDeadlineTimer) ClearArrival() {
	t.arrivalValid = false
	t.arrivalRemaining = 0
}

// ReloadTimeslice sets timeslice_remaining to time_unit * quantumUnits
// and marks it valid. Called after a TimesliceOver fire under RR, and
// whenever a ReadySet becomes non-empty under RR.
func (t *DualDeadlineTimer) ReloadTimeslice() {
	t.timesliceRemaining = t.unit * time.Duration(t.quantumUnits)
	t.timesliceValid = true
}

// ClearTimeslice invalidates the timeslice deadline (not RR, or ReadySet
// empty).
func (t *DualDeadlineTimer) ClearTimeslice() {
	t.timesliceValid = false
	t.timesliceRemaining = 0
}

// ClassifyFire reports which deadline fired: ProcessArrival if the
// arrival deadline is valid and is the minimum (or the only valid one),
// else TimesliceOver.
func (t *DualDeadlineTimer) ClassifyFire() FireKind {
	switch {
	case t.arrivalValid && t.timesliceValid:
		if t.arrivalRemaining <= t.timesliceRemaining {
			return ProcessArrival
		}
		return TimesliceOver
	case t.arrivalValid:
		return ProcessArrival
	default:
		return TimesliceOver
	}
}

// Debit subtracts the fired deadline's duration from the other deadline
// (if valid) and zeroes the fired one. This is the only mechanism that
// keeps the unfired countdown accurate across physical fires; it must
// not be replaced by restarting both deadlines on every fire.
func (t *DualDeadlineTimer) Debit(kind FireKind) {
	switch kind {
	case ProcessArrival:
		fired := t.arrivalRemaining
		t.arrivalRemaining = 0
		if t.timesliceValid {
			t.timesliceRemaining -= fired
		}
	case TimesliceOver:
		fired := t.timesliceRemaining
		t.timesliceRemaining = 0
		if t.arrivalValid {
			t.arrivalRemaining -= fired
		}
	}
}

// Arm sets the physical timer to the minimum of the applicable
// deadlines and returns the channel it will fire on. If neither
// deadline is valid, it returns nil — a nil channel blocks forever in a
// select, which is exactly "no deadline armed".
func (t *DualDeadlineTimer) Arm() <-chan time.Time {
	if t.osTimer != nil {
		t.osTimer.Stop()
		t.osTimer = nil
	}
	d, ok := t.minDeadline()
	if !ok {
		return nil
	}
	if d < 0 {
		d = 0
	}
	t.osTimer = time.NewTimer(d)
	return t.osTimer.C
}

func (t *DualDeadlineTimer) minDeadline() (time.Duration, bool) {
	switch {
	case t.arrivalValid && t.timesliceValid:
		if t.arrivalRemaining <= t.timesliceRemaining {
			return t.arrivalRemaining, true
		}
		return t.timesliceRemaining, true
	case t.arrivalValid:
		return t.arrivalRemaining, true
	case t.timesliceValid:
		return t.timesliceRemaining, true
	default:
		return 0, false
	}
}
