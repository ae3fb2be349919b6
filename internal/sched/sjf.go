package sched

// sjfSet is an unordered bag. Current is selected once, from an
// empty-CPU state, by argmin(Remaining), and keeps running to
// completion regardless of later arrivals — SJF never preempts.
type sjfSet struct {
	entries []*ProcessEntry
	current *ProcessEntry
}

func newSJFSet() *sjfSet {
	return &sjfSet{}
}

func (s *sjfSet) Add(p *ProcessEntry) {
	wasEmpty := len(s.entries) == 0
	s.entries = append(s.entries, p)
	if wasEmpty {
		s.current = p
	}
}

func (s *sjfSet) RemoveCurrent() {
	s.entries = removeEntry(s.entries, s.current)
	s.current = argMinRemaining(s.entries, nil)
}

func (s *sjfSet) TimesliceOver() {
	// SJF is non-preemptive; quantum expiry is not meaningful here.
}

func (s *sjfSet) ContextSwitch() (prev, curr *ProcessEntry) {
	return nil, s.current
}

func (s *sjfSet) IsEmpty() bool {
	return len(s.entries) == 0
}

// argMinRemaining returns the entry with the smallest Remaining, ties
// broken by lowest Seq (insertion order). preferred, if non-nil and
// still present, wins every tie against entries of equal Remaining,
// whatever their Seq (used by PSJF to avoid unnecessary preemption).
func argMinRemaining(entries []*ProcessEntry, preferred *ProcessEntry) *ProcessEntry {
	if len(entries) == 0 {
		return nil
	}
	best := entries[0]
	for _, e := range entries[1:] {
		switch {
		case e.Remaining < best.Remaining:
			best = e
		case e.Remaining == best.Remaining:
			if best != preferred {
				if e == preferred || e.Seq < best.Seq {
					best = e
				}
			}
		}
	}
	return best
}

func removeEntry(entries []*ProcessEntry, target *ProcessEntry) []*ProcessEntry {
	for i, e := range entries {
		if e == target {
			return append(entries[:i], entries[i+1:]...)
		}
	}
	return entries
}
