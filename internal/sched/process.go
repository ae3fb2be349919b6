package sched

// Status is the lifecycle state of a ProcessEntry.
type Status int

const (
	NotStarted Status = iota
	Ready
	Running
	Terminated
)

func (s Status) String() string {
	switch s {
	case NotStarted:
		return "NotStarted"
	case Ready:
		return "Ready"
	case Running:
		return "Running"
	case Terminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}

// Policy selects which ReadySet strategy the engine uses.
type Policy string

const (
	FIFO Policy = "FIFO"
	RR   Policy = "RR"
	SJF  Policy = "SJF"
	PSJF Policy = "PSJF"
)

// ProcessEntry is one admitted or admittable workload entry.
//
// Remaining is seeded from BurstLength and never mutated afterward: the
// parent has no channel for a running child to report partial progress,
// so SJF/PSJF rank on the original burst length for the entry's whole
// lifetime (see DESIGN.md, Open Question resolution).
type ProcessEntry struct {
	Name          string
	ArrivalOffset int
	BurstLength   int
	Remaining     int
	OSPid         int
	Status        Status

	// Seq is the stable admission-order index assigned at parse time.
	// Used only to break ties in the Arrival Queue and in SJF/PSJF.
	Seq int
}

// NewProcessEntry constructs a ProcessEntry in its NotStarted state with
// Remaining seeded from burst, as produced by workload parsing.
func NewProcessEntry(name string, arrival, burst, seq int) *ProcessEntry {
	return &ProcessEntry{
		Name:          name,
		ArrivalOffset: arrival,
		BurstLength:   burst,
		Remaining:     burst,
		Status:        NotStarted,
		Seq:           seq,
	}
}

// ProcessTimeRecord is per-child timing bookkeeping. Nothing in this
// module populates it: TimeSink receives a pid and name rather than a
// record, and the core never reads or writes one.
type ProcessTimeRecord struct {
	PID   int
	Start int64 // UnixNano; zero means not yet recorded
	End   int64
}
