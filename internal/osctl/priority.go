//go:build linux

package osctl

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Level selects which of the two real-time priority levels spec §6
// allows: the parent's own maximum, or one level below it (every
// child).
type Level int

const (
	LevelParentMax Level = iota
	LevelChildBelowParent
)

// Pinner pins processes to SCHED_FIFO real-time priorities using
// golang.org/x/sys/unix, per the Priority Pinner collaborator contract:
// pin(pid, priority_level) with priority_level in {parent_max,
// parent_max - 1}.
type Pinner struct {
	max int
}

// NewPinner reads SCHED_FIFO's maximum priority once.
func NewPinner() (*Pinner, error) {
	max, err := unix.SchedGetPriorityMax(unix.SCHED_FIFO)
	if err != nil {
		return nil, fmt.Errorf("osctl: sched_get_priority_max: %w", err)
	}
	return &Pinner{max: max}, nil
}

// PinSelf pins the calling process to parent_max. It implements
// sched.PriorityPinner.
func (p *Pinner) PinSelf() error {
	return p.Pin(0, LevelParentMax)
}

// Pin pins pid (0 meaning the caller) to the given level.
func (p *Pinner) Pin(pid int, level Level) error {
	prio := p.max
	if level == LevelChildBelowParent {
		prio--
	}
	param := &unix.SchedParam{Priority: int32(prio)}
	if err := unix.SchedSetscheduler(pid, unix.SCHED_FIFO, param); err != nil {
		return fmt.Errorf("osctl: sched_setscheduler(pid=%d, prio=%d): %w", pid, prio, err)
	}
	return nil
}
