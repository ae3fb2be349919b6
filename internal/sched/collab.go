package sched

// OSController is the minimal OS-primitive contract the event loop
// depends on: fork (Spawn), suspend-process, resume-process. Spawn must
// fork the child and immediately suspend it before returning, so it
// never races the dispatcher (spec §4.E, "Admission effect").
type OSController interface {
	Spawn(burstLength int) (pid int, err error)
	Suspend(pid int) error
	Resume(pid int) error
}

// TimeSink is the opaque time-recording collaborator. The core passes a
// reference and never interprets its contents; it is invoked only to
// satisfy the admission/termination bracketing the original spec
// describes. Real recording happens inside the child process itself
// (see internal/osctl); the core's own calls here are a logging-level
// bookkeeping stand-in for visibility into admission/reap timing.
type TimeSink interface {
	RecordAdmit(pid int, name string)
	RecordReap(pid int, name string)
}

// PriorityPinner pins the calling process to a real-time priority level.
// Missing privilege is surfaced as an error; the core logs it and
// continues (spec §7: correctness degrades, no invariant is violated).
type PriorityPinner interface {
	PinSelf() error
}
