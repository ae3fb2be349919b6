package sched

// psjfSet is the preemptive counterpart of sjfSet: current is
// recomputed after every mutation as argmin(Remaining) over the whole
// set, ties preferring the entry already running (to avoid unnecessary
// preemption), then lowest Seq.
type psjfSet struct {
	entries  []*ProcessEntry
	current  *ProcessEntry
	previous *ProcessEntry
}

func newPSJFSet() *psjfSet {
	return &psjfSet{}
}

func (s *psjfSet) Add(p *ProcessEntry) {
	s.entries = append(s.entries, p)
	s.recompute()
}

func (s *psjfSet) RemoveCurrent() {
	s.entries = removeEntry(s.entries, s.current)
	// The removed entry already terminated; there is nothing left to
	// suspend on its account.
	s.current = nil
	s.recompute()
}

func (s *psjfSet) TimesliceOver() {
	// PSJF preempts on arrival/removal, not on a quantum.
}

func (s *psjfSet) ContextSwitch() (prev, curr *ProcessEntry) {
	prev, s.previous = s.previous, nil
	return prev, s.current
}

func (s *psjfSet) IsEmpty() bool {
	return len(s.entries) == 0
}

// recompute re-derives current as argmin(Remaining) and, if that
// displaces the incumbent, records the incumbent as previous.
//
// previous is only set when it is not already holding an entry: two
// admissions can recompute in the same event-loop iteration without an
// intervening ContextSwitch (a zero-gap arrival batch), and the second
// recompute's "old" is only the first recompute's winner, not the
// genuinely OS-running entry — that one is already sitting in
// previous, pending suspension, and must not be clobbered.
func (s *psjfSet) recompute() {
	old := s.current
	next := argMinRemaining(s.entries, old)
	if next != old && s.previous == nil {
		s.previous = old
	}
	s.current = next
}
